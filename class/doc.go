// Package class implements a dynamic class system that exposes native Go
// data structures to embedded Lua scripts as typed, introspectable objects.
//
// This package contains:
//   - Class descriptors with per-class property tables and signal registries
//   - A process-scoped class registry used for runtime type identification
//   - Identity-tag type checks over opaque userdata handles
//   - Generic __index/__newindex dispatch with miss-handler fallbacks
//   - A generic constructor driven by initializer tables
//
// All entry points run on the single logical thread executing the script
// interpreter; registries are append-only after setup and need no locking.
package class
