// Package log provides colored console output for diagnostics. Everything
// goes to stderr so that stdout only ever carries the program's output.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// SetNoColor disables ANSI colors when noColor is true. When false, the
// default detection of fatih/color is left untouched.
func SetNoColor(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}
