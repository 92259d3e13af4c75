package smbios

// MemoryChannel decodes a Memory Channel structure (type 37).
type MemoryChannel struct {
	s *Structure
}

func (c *MemoryChannel) Structure() *Structure { return c.s }

func (c *MemoryChannel) ChannelType() (ChannelType, bool) {
	v, ok := c.s.ByteAt(0x04)
	return ChannelType(v), ok
}

// MaximumChannelLoad returns the maximum load supported by the channel.
func (c *MemoryChannel) MaximumChannelLoad() (uint8, bool) {
	return c.s.ByteAt(0x05)
}

// Devices returns the per-device load and handle pairs. The device count
// byte at 0x06 bounds the 3-byte entries starting at 0x07.
func (c *MemoryChannel) Devices() ([]MemoryChannelDevice, bool) {
	n, ok := c.s.ByteAt(0x06)
	if !ok {
		return nil, false
	}
	devices := make([]MemoryChannelDevice, 0, n)
	for i := 0; i < int(n); i++ {
		load, ok := c.s.ByteAt(0x07 + i*3)
		if !ok {
			break
		}
		handle, ok := c.s.HandleAt(0x08 + i*3)
		if !ok {
			break
		}
		devices = append(devices, MemoryChannelDevice{Load: load, Handle: handle})
	}
	return devices, true
}

// MemoryChannelDevice is one load/handle pair within a memory channel.
type MemoryChannelDevice struct {
	Load   uint8
	Handle Handle
}

// ChannelType is the channel type enumeration.
type ChannelType uint8

var channelTypeStrings = map[ChannelType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "RamBus",
	0x04: "SyncLink",
}

func (t ChannelType) String() string {
	if s, ok := channelTypeStrings[t]; ok {
		return s
	}
	return unrecognized(uint8(t))
}
