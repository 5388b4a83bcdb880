/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ponyo877/extension-searcher/logging"
	"github.com/ponyo877/extension-searcher/scanner/repository"
	"github.com/ponyo877/extension-searcher/scanner/usecase"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "0.1.0"

const (
	logLevelKey = "log_level"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// app holds what the commands of a single invocation share.
type app struct {
	fs      afero.Fs
	config  *viper.Viper
	cfgFile string
	logger  *slog.Logger
	usecase Usecase
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:     fs,
		config: viper.New(),
	}
	a.config.SetFs(fs)

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "extension-searcher",
		Short: "Finds files by extension",
		Long: `extension-searcher walks a directory tree and prints the path of every
entry whose extension matches one of the given extensions.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          rejectSubcommand,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return &UsageError{Err: errors.New("a subcommand is required")}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("{{.Root.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON); none is read by default")
	rootCmd.PersistentFlags().String("log-level", logging.LevelWarn, "log level: debug, info, warn or error")

	a.config.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	a.config.SetDefault(logLevelKey, logging.LevelWarn)

	rootCmd.AddCommand(newSearchCmd(a))
	return rootCmd
}

// initConfig reads the config file if one was given and builds the logger
// and the usecase from the resulting settings.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.config.SetConfigFile(a.cfgFile)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", a.cfgFile, err)
		}
	}

	logger, err := logging.New(a.config.GetString(logLevelKey), cmd.ErrOrStderr())
	if err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", "config_file", a.config.ConfigFileUsed(), "log_level", a.config.GetString(logLevelKey))

	rp := repository.NewRepository(a.fs, a.logger)
	a.usecase = usecase.NewUsecase(rp)
	return nil
}

// Execute runs the command line of the process and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(run(afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes args against fs and returns the exit status: exitUsage for
// usage and validation errors, exitFailure for anything else.
func run(fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd := newRootCmd(fs)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(stderr, "Error:", err)

	var usageErr *UsageError
	var validationErr *ValidationError
	if errors.As(err, &usageErr) || errors.As(err, &validationErr) {
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitFailure
}
