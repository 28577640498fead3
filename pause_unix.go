//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
)

const pauseHint = ", send SIGUSR1 to pause/resume"

// notifyPause relays SIGUSR1 to ch so the driver can toggle pause
func notifyPause(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGUSR1)
}
