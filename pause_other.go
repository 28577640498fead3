//go:build !unix

package main

import "os"

const pauseHint = ""

// notifyPause is a no-op where SIGUSR1 does not exist.
func notifyPause(chan<- os.Signal) {}
