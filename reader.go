package smbios

import (
	"context"
	"time"
)

const readTimeout = 10 * time.Second

// Read acquires the structure table from the running system's firmware
// and decodes it. A nil context gets a ten second timeout. Decode's
// partial-result contract applies.
func Read(ctx context.Context) (*Table, error) {
	version, data, err := ReadRaw(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(data, version)
}

// ReadRaw acquires the undecoded structure table along with the version
// the firmware advertises for it.
func ReadRaw(ctx context.Context) (Version, []byte, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
	}
	return readRaw(ctx)
}
