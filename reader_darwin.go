package smbios

import (
	"bytes"
	"context"
	"encoding/hex"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// readRaw extracts the SMBIOS-EPS and SMBIOS properties of the
// AppleSMBIOS service from ioreg output.
func readRaw(ctx context.Context) (Version, []byte, error) {
	out, err := exec.CommandContext(ctx, "ioreg", "-rd1", "-c", "AppleSMBIOS").Output()
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "running ioreg")
	}

	epsHex, tableHex, err := extractProperties(string(out))
	if err != nil {
		return Version{}, nil, err
	}

	epsData, err := hex.DecodeString(epsHex)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "decoding SMBIOS-EPS")
	}
	data, err := hex.DecodeString(tableHex)
	if err != nil {
		return Version{}, nil, errors.Wrap(err, "decoding SMBIOS")
	}

	ep, err := ParseEntryPoint(bytes.NewReader(epsData))
	if err != nil {
		return Version{}, nil, err
	}
	return ep.Version(), data, nil
}

// extractProperties pulls the hex payloads of the quoted SMBIOS-EPS and
// SMBIOS keys out of ioreg's property listing.
func extractProperties(listing string) (eps, table string, err error) {
	for line := range strings.Lines(listing) {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), "<>")
		switch strings.TrimSpace(key) {
		case `"SMBIOS-EPS"`:
			eps = value
		case `"SMBIOS"`:
			table = value
		}
	}
	if eps == "" || table == "" {
		return "", "", errors.New("AppleSMBIOS properties not found in ioreg output")
	}
	return eps, table, nil
}
