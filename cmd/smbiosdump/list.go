package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hwprobe/smbios"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every structure in the table",
	Long: `List every structure in the table with its handle, type and size.

Examples:
  # List structures of the running system
  smbiosdump list

  # List structures of two saved dumps
  smbiosdump list -f a.bin -f b.bin`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	sources, err := loadSources(cmd.Context())
	if err != nil {
		return err
	}

	for _, src := range sources {
		if len(sources) > 1 {
			fmt.Printf("%s (SMBIOS %s):\n", src.Name, src.Table.Version)
		} else {
			fmt.Printf("SMBIOS %s\n", src.Table.Version)
		}

		table := newTable()
		table.SetHeader([]string{"Handle", "Type", "Name", "Length", "Strings"})
		for _, ts := range src.Table.All() {
			s := ts.Structure()
			table.Append([]string{
				s.Handle.String(),
				fmt.Sprintf("%d", s.Header.Type),
				smbios.StructureType(s.Header.Type).String(),
				fmt.Sprintf("%d", s.Header.Length),
				fmt.Sprintf("%d", len(s.Strings)),
			})
		}
		table.Render()
		fmt.Println()
	}
	return nil
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
