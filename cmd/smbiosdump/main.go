package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dumpFiles []string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "smbiosdump",
	Short: "Inspect SMBIOS firmware tables",
	Long: `smbiosdump decodes the SMBIOS structure table of the running system,
or of binary dumps given with --file, and prints its contents.

Use "smbiosdump [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&dumpFiles, "file", "f", nil,
		"decode binary dump file(s) instead of the running system")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
