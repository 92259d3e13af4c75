package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hwprobe/smbios"
)

// source pairs a decoded table with where it came from.
type source struct {
	Name  string
	Table *smbios.Table
}

// loadSources decodes the system table, or every --file dump in
// parallel. Partially decoded tables are kept; the decode error is
// logged and the command proceeds with what was recovered.
func loadSources(ctx context.Context) ([]source, error) {
	if len(dumpFiles) == 0 {
		table, err := smbios.Read(ctx)
		if table == nil {
			return nil, err
		}
		if err != nil {
			log.Warn().Err(err).Msg("table decoded partially")
		}
		return []source{{Name: "system", Table: table}}, nil
	}

	sources := make([]source, len(dumpFiles))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range dumpFiles {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, err := smbios.ReadFile(path)
			if table == nil {
				return err
			}
			if err != nil {
				log.Warn().Str("file", path).Err(err).Msg("table decoded partially")
			}
			sources[i] = source{Name: path, Table: table}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}
