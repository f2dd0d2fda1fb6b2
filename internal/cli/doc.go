// Package cli defines the Cobra command tree for the linkskills CLI. Each file
// registers one command with the root command. Commands delegate to the
// linker and config packages and only handle flags and output formatting.
package cli
