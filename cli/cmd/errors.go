/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError reports a command line that does not fit the usage of the
// command, e.g. a missing argument or an unknown flag.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ValidationError reports a command line that parsed but was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// rejectSubcommand is the Args validator of the root command. Cobra only
// hands positional arguments to the root when no subcommand matched them.
func rejectSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	reason := fmt.Sprintf("invalid subcommand %q", args[0])
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		reason += fmt.Sprintf(", did you mean %q?", suggestions[0])
	}
	return &ValidationError{Reason: reason}
}
