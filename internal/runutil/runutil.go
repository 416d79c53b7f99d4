// internal/runutil/runutil.go
package runutil

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// EffectiveThreads returns n when positive; otherwise the number of CPUs.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	if c := runtime.NumCPU(); c > 0 {
		return c
	}
	return 1
}

// ColorEnabled resolves the --color mode against the destination.
// "auto" colors only when f is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// IsTerminal reports whether f is attached to a terminal (including Cygwin/MSYS ptys).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

