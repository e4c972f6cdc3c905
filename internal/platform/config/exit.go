package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ExitCode is the process status used for configuration failures.
const ExitCode = 1

// Exitf reports a fatal startup failure on stderr and exits with ExitCode.
// Entry points use it before a logger exists.
func Exitf(format string, args ...any) {
	fail(os.Stderr, os.Exit, format, args...)
}

func fail(w io.Writer, exit func(int), format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(w, msg)
	exit(ExitCode)
}
