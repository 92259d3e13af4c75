package smbios

// SystemReset decodes a System Reset structure (type 23).
type SystemReset struct {
	s *Structure
}

func (r *SystemReset) Structure() *Structure { return r.s }

// Capabilities returns the raw capabilities byte: enabled (bit 0), boot
// option (bits 1-2), boot option on limit (bits 3-4), watchdog (bit 5).
func (r *SystemReset) Capabilities() (uint8, bool) {
	return r.s.ByteAt(0x04)
}

// ResetCount returns the number of automatic resets since the last
// intentional reset. 0xFFFF means unknown.
func (r *SystemReset) ResetCount() (uint16, bool) {
	return r.counterField(0x05)
}

// ResetLimit returns the number of consecutive resets after which a system
// reboot is initiated. 0xFFFF means unknown.
func (r *SystemReset) ResetLimit() (uint16, bool) {
	return r.counterField(0x07)
}

// TimerInterval returns the watchdog firing interval in minutes. 0xFFFF
// means unknown.
func (r *SystemReset) TimerInterval() (uint16, bool) {
	return r.counterField(0x09)
}

// Timeout returns the reboot timeout in minutes. 0xFFFF means unknown.
func (r *SystemReset) Timeout() (uint16, bool) {
	return r.counterField(0x0B)
}

func (r *SystemReset) counterField(off int) (uint16, bool) {
	v, ok := r.s.WordAt(off)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}
