// Package terminal is the tcell front end for the engine: it owns the
// screen lifecycle, turns key events into engine inputs and draws
// snapshots.
//
// Features:
//   - Non-blocking input: PollLoop, run by the caller on its own goroutine, feeds a buffered channel
//   - Board drawn two columns per cell, centred, with LINES and NEXT panels
//   - Idempotent Fini, safe to defer on every exit path
//   - EmergencyReset for crash paths where the tcell screen is unavailable
package terminal
