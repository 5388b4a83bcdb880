/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	// searchCmd represents the search command
	searchCmd := &cobra.Command{
		Use:   "search <dir> <extensions...>",
		Short: "Recursively searches the specified directory after files, with the specified extensions",
		Long: `Recursively searches the specified directory after files, with the specified extensions.

<dir>            The root directory
<extensions...>  The list of extensions that will be searched after

Extensions are given without the leading dot and compared case-insensitively.
Every matching path is printed on its own line. Entries that cannot be read
are skipped silently.`,
		Example: `  extension-searcher search ./docs md txt
  extension-searcher search /var/log LOG`,
		Version: version,
		Args:    requireSearchArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, extensions := args[0], args[1:]
			a.logger.Debug("search started", "root", root, "extensions", extensions)
			if err := a.usecase.SearchExtensions(root, extensions, cmd.OutOrStdout()); err != nil {
				return err
			}
			a.logger.Debug("search finished", "root", root)
			return nil
		},
	}

	return searchCmd
}

func requireSearchArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &UsageError{Err: errors.New("missing required argument <dir>")}
	case 1:
		return &UsageError{Err: errors.New("missing required argument <extensions...>: at least one extension is required")}
	}
	return nil
}
