package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwprobe/smbios"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a hardware summary",
	Long:  `Show a summary of the BIOS, system, baseboard, processor and memory structures.`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	sources, err := loadSources(cmd.Context())
	if err != nil {
		return err
	}

	for _, src := range sources {
		if len(sources) > 1 {
			fmt.Printf("%s:\n", src.Name)
		}
		printSummary(src.Table)
		fmt.Println()
	}
	return nil
}

func printSummary(t *smbios.Table) {
	table := newTable()
	row := func(key, value string) {
		table.Append([]string{key, value})
	}
	str := func(v string, ok bool) string {
		if !ok {
			return "-"
		}
		return v
	}

	row("SMBIOS Version", t.Version.String())

	if bios, ok := smbios.First[*smbios.BIOSInformation](t); ok {
		row("BIOS Vendor", str(bios.Vendor()))
		row("BIOS Version", str(bios.Version()))
		row("BIOS Release Date", str(bios.ReleaseDate()))
	}

	if sys, ok := smbios.First[*smbios.SystemInformation](t); ok {
		row("System Manufacturer", str(sys.Manufacturer()))
		row("System Product", str(sys.ProductName()))
		row("System Serial", str(sys.SerialNumber()))
		if id, ok := sys.UUID(); ok {
			row("System UUID", id.String())
		}
	}

	if board, ok := smbios.First[*smbios.BaseboardInformation](t); ok {
		row("Baseboard Manufacturer", str(board.Manufacturer()))
		row("Baseboard Product", str(board.Product()))
	}

	if chassis, ok := smbios.First[*smbios.SystemChassis](t); ok {
		if ct, ok := chassis.ChassisType(); ok {
			row("Chassis Type", ct.String())
		}
	}

	for i, cpu := range smbios.Collect[*smbios.ProcessorInformation](t) {
		if populated, ok := cpu.SocketPopulated(); ok && !populated {
			continue
		}
		name, ok := cpu.Version()
		if !ok {
			name, _ = cpu.SocketDesignation()
		}
		detail := name
		if cores, ok := cpu.CoreCount(); ok {
			detail = fmt.Sprintf("%s (%d cores)", name, cores)
		}
		row(fmt.Sprintf("Processor %d", i), detail)
	}

	var total uint64
	var populated int
	for _, dev := range smbios.Collect[*smbios.MemoryDevice](t) {
		size, ok := dev.Size()
		if !ok {
			continue
		}
		populated++
		total += size
	}
	row("Memory Devices", fmt.Sprintf("%d populated", populated))
	row("Memory Total", fmt.Sprintf("%d MB", total/(1024*1024)))

	table.Render()
}
