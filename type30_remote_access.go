package smbios

// OutOfBandRemoteAccess decodes an Out-of-Band Remote Access structure
// (type 30).
type OutOfBandRemoteAccess struct {
	s *Structure
}

func (r *OutOfBandRemoteAccess) Structure() *Structure { return r.s }

func (r *OutOfBandRemoteAccess) ManufacturerName() (string, bool) {
	return r.s.StringAt(0x04)
}

// InboundConnectionEnabled reports whether inbound connections are
// enabled (connections bit 0).
func (r *OutOfBandRemoteAccess) InboundConnectionEnabled() (bool, bool) {
	v, ok := r.s.ByteAt(0x05)
	return v&0x01 != 0, ok
}

// OutboundConnectionEnabled reports whether outbound connections are
// enabled (connections bit 1).
func (r *OutOfBandRemoteAccess) OutboundConnectionEnabled() (bool, bool) {
	v, ok := r.s.ByteAt(0x05)
	return v&0x02 != 0, ok
}
