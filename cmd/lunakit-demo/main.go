// lunakit-demo - registers a sample native class and runs a Lua script against it
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	lua "github.com/yuin/gopher-lua"

	"github.com/lunakit/lunakit/class"
	"github.com/lunakit/lunakit/object"

	_ "github.com/tliron/commonlog/simple"
)

// Config represents a lunakit-demo.toml configuration file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Script ScriptConfig `toml:"script"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Verbosity int `toml:"verbosity"`
}

// ScriptConfig configures which script to run.
type ScriptConfig struct {
	Path string `toml:"path"`
}

// resolveConfig merges the defaults, the optional TOML file, and the
// command line into the effective configuration. A positional script
// argument overrides the file's script path, and the -v flag forces
// verbosity 2 over whatever the file says.
func resolveConfig(configPath string, verbose bool, args []string) (Config, error) {
	cfg := Config{
		Script: ScriptConfig{Path: "examples/counter.lua"},
	}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(args) > 0 {
		cfg.Script.Path = args[0]
	}
	if verbose {
		cfg.Log.Verbosity = 2
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	verbose := flag.Bool("v", false, "Verbose output (overrides config verbosity)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lunakit-demo [options] [script.lua]\n\n")
		fmt.Fprintf(os.Stderr, "Registers a 'counter' class and runs the given Lua script against it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lunakit-demo examples/counter.lua\n")
		fmt.Fprintf(os.Stderr, "  lunakit-demo -config lunakit-demo.toml\n")
	}
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *verbose, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	commonlog.Configure(cfg.Log.Verbosity, nil)

	L := lua.NewState()
	defer L.Close()

	reg := class.NewRegistry()
	refs := object.NewRefRegistry()
	registerCounter(L, reg, refs)

	if err := L.DoFile(cfg.Script.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
