// Package cli is the interactive planner client.
//
// It opens the local credential store, builds the request gateway and runs a
// REPL behind a login gate: until a session exists only help, register,
// login, status and exit are offered; afterwards plan, day, logout, status
// and exit. A session left over from a previous run opens the gate at
// start-up.
//
// The REPL is started with App.Run, which blocks until the user exits or
// input ends.
package cli
