// Package handoff moves work between the foreground (UI) goroutine and
// background workers. Workers never touch presentation state; they return a
// typed Result that a Scheduler delivers to the foreground in FIFO order.
package handoff
