// Package config holds the settings collected from the command line and the
// injectable dependencies used to run the program.
package config

// Shared contains settings that apply to every command.
type Shared struct {
	Verbose bool
	NoColor bool
}
