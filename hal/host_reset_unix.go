//go:build !tinygo && unix

package hal

import (
	"os"

	"golang.org/x/sys/unix"
)

// restartProcess replaces the running process with a fresh copy of itself.
func restartProcess(log Logger) {
	exe, err := os.Executable()
	if err == nil {
		log.WriteLineString("system: rebooting")
		err = unix.Exec(exe, os.Args, os.Environ())
	}
	log.WriteLineString("system: re-exec failed: " + err.Error())
	os.Exit(3)
}
