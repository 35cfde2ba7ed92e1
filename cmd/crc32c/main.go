package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/crc32c"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var forceSW bool

	cmd := &cobra.Command{
		Use:   "crc32c [file ...]",
		Short: "Compute CRC-32C (Castagnoli) checksums",
		Long: `crc32c computes CRC-32C (Castagnoli) checksums of files or stdin.

It uses the CPU's CRC32 instruction when available and falls back to a
bit-serial software implementation otherwise. The selected engine can be
inspected with "crc32c info" and verified with "crc32c selfcheck".`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if forceSW {
				crc32c.ForceSoftware()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return sumStdin(cmd.OutOrStdout())
			}
			return sumFiles(cmd.OutOrStdout(), args)
		},
	}

	cmd.PersistentFlags().BoolVar(&forceSW, "force-sw", false, "force the software engine")

	cmd.AddCommand(
		newSelfCheckCommand(),
		newInfoCommand(),
	)

	return cmd
}
