// Package greeting writes the MarketEdge Global welcome banner.
package greeting

import (
	"fmt"
	"io"

	"marketedgeglobal/marketedge/pkg/config"
	"marketedgeglobal/marketedge/pkg/log"
)

const (
	// WelcomeLine is the first line of the banner.
	WelcomeLine = "Welcome to MarketEdge Global!"
	// RepositoryLine is the second line of the banner.
	RepositoryLine = "This is a new repository initialized with files from Git."
)

// Lines returns the banner lines in output order.
func Lines() []string {
	return []string{WelcomeLine, RepositoryLine}
}

// Fprint writes each banner line to w, followed by a newline.
func Fprint(w io.Writer) error {
	for _, line := range Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing %q: %w", line, err)
		}
	}

	return nil
}

// Print writes the banner to the stdout resolved from deps.
func Print(deps *config.Dependencies) error {
	return Fprint(config.GetStdoutFunc(deps)())
}

// Run writes the banner to the process's current stdout. A failed write is
// reported on stderr.
func Run() {
	if err := Print(nil); err != nil {
		log.ErrorMsg("%s\n", err)
	}
}
