//go:build !tinygo && !unix

package hal

import "os"

// restartProcess exits with status 3 so a supervisor can start the emulator again.
func restartProcess(log Logger) {
	log.WriteLineString("system: rebooting (exit 3)")
	os.Exit(3)
}
