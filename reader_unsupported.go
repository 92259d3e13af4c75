//go:build !linux && !windows && !darwin

package smbios

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
)

func readRaw(ctx context.Context) (Version, []byte, error) {
	return Version{}, nil, errors.Errorf("reading firmware tables is not supported on %s", runtime.GOOS)
}
