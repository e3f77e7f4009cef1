// Package command provides command sinks for the key parser.
//
// The parser resolves key sequences to command strings; this package routes
// those strings to handlers. Two sinks are provided:
//
//   - Registry: maps command names to Go handler functions
//   - LuaExecutor: routes commands to same-named functions in a Lua chunk,
//     for user-scriptable bindings
//
// Both satisfy input.Executor through their Executor adapters.
package command
