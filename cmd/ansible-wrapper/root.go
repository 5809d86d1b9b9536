package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/ansible-wrapper/internal/messages"
)

// newRootCmd builds a root command that forwards argv untouched.
// Flag parsing is disabled so --help and --version reach Ansible.
func newRootCmd(argv []string, cwd string) *cobra.Command {
	return &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Long:               messages.RootLong,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFunc(argv, versionString(), cwd, cmd.ErrOrStderr())
		},
	}
}
