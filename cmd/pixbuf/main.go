// Command pixbuf transforms, filters and displays images from the command
// line.
package main

import (
	"errors"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		exitCodeError := &ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		}
		os.Exit(ExitCodeInvalidArguments)
	}
}
