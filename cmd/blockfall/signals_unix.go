//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// shutdownSignals end a run the same way a game over does
var shutdownSignals = []os.Signal{unix.SIGINT, unix.SIGTERM}
