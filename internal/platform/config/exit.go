package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeStartup is the process status for failures before serving begins.
const ExitCodeStartup = 1

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exit reports a startup failure for command on stderr and terminates the
// process with ExitCodeStartup.
func Exit(command string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s: %v\n", command, err)
	exit(ExitCodeStartup)
}
