package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mohammadpnp/jobboard-seed/internal/config"
)

type configLoader func() (*config.Configuration, error)

// session carries what the persistent pre-run loaded to the subcommands.
type session struct {
	load configLoader
	cfg  *config.Configuration
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(func() (*config.Configuration, error) {
		return config.Load(config.DefaultEnvFiles)
	})
}

func newRootCmd(load configLoader) *cobra.Command {
	s := &session{load: load}

	cmd := &cobra.Command{
		Use:           "seedctl",
		Short:         "Generate, import, export and compare job board seed data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load()
			if err != nil {
				return withCode(exitUsage, err)
			}
			s.cfg = cfg
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.AddCommand(newGenerateCmd(s))
	cmd.AddCommand(newImportCmd(s))
	cmd.AddCommand(newExportCmd(s))
	cmd.AddCommand(newCompareCmd(s))
	cmd.AddCommand(newVerifyCmd(s))
	return cmd
}

// Execute runs seedctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCmd(), args, stdin, stdout, stderr)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}
	return exitOK
}

// override copies a flag value over the configured one when the flag was
// set explicitly.
func override[T any](cmd *cobra.Command, flag string, dst *T, value T) {
	if cmd.Flags().Changed(flag) {
		*dst = value
	}
}
