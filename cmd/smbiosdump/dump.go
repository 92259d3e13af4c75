package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hwprobe/smbios"
)

var dumpOutput string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Save the system table to a binary dump",
	Long: `Save the raw structure table of the running system, prefixed with a
synthesized 64-bit entry point, in the layout the --file flag reads back.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "smbios.bin", "output file")
}

func runDump(cmd *cobra.Command, args []string) error {
	version, data, err := smbios.ReadRaw(cmd.Context())
	if err != nil {
		return err
	}

	ep := smbios.NewEntryPoint64(version, len(data))
	if err := smbios.WriteFile(dumpOutput, ep, data); err != nil {
		return err
	}

	log.Info().Str("file", dumpOutput).Int("bytes", len(data)).Msg("table saved")
	return nil
}
