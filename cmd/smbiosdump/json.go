package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwprobe/smbios"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Print the table as JSON",
	Long:  `Print every structure as JSON: header fields, string-set and raw formatted bytes.`,
	RunE:  runJSON,
}

type structureJSON struct {
	Handle    string   `json:"handle"`
	Type      uint8    `json:"type"`
	Kind      string   `json:"kind"`
	Length    uint8    `json:"length"`
	Strings   []string `json:"strings,omitempty"`
	Formatted string   `json:"formatted"`
}

type tableJSON struct {
	Version    string          `json:"version"`
	Source     string          `json:"source"`
	Structures []structureJSON `json:"structures"`
}

func runJSON(cmd *cobra.Command, args []string) error {
	sources, err := loadSources(cmd.Context())
	if err != nil {
		return err
	}

	out := make([]tableJSON, 0, len(sources))
	for _, src := range sources {
		tj := tableJSON{
			Version: src.Table.Version.String(),
			Source:  src.Name,
		}
		for _, ts := range src.Table.All() {
			s := ts.Structure()
			tj.Structures = append(tj.Structures, structureJSON{
				Handle:    s.Handle.String(),
				Type:      s.Header.Type,
				Kind:      smbios.StructureType(s.Header.Type).String(),
				Length:    s.Header.Length,
				Strings:   s.Strings,
				Formatted: hex.EncodeToString(s.Formatted),
			})
		}
		out = append(out, tj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
