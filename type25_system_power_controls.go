package smbios

// SystemPowerControls decodes a System Power Controls structure (type 25):
// the BCD-encoded next scheduled power-on time.
type SystemPowerControls struct {
	s *Structure
}

func (p *SystemPowerControls) Structure() *Structure { return p.s }

func (p *SystemPowerControls) NextScheduledPowerOnMonth() (uint8, bool) {
	return p.bcdField(0x04)
}

func (p *SystemPowerControls) NextScheduledPowerOnDay() (uint8, bool) {
	return p.bcdField(0x05)
}

func (p *SystemPowerControls) NextScheduledPowerOnHour() (uint8, bool) {
	return p.bcdField(0x06)
}

func (p *SystemPowerControls) NextScheduledPowerOnMinute() (uint8, bool) {
	return p.bcdField(0x07)
}

func (p *SystemPowerControls) NextScheduledPowerOnSecond() (uint8, bool) {
	return p.bcdField(0x08)
}

// bcdField decodes one packed BCD byte; nonsense nibbles report absent.
func (p *SystemPowerControls) bcdField(off int) (uint8, bool) {
	v, ok := p.s.ByteAt(off)
	if !ok || v>>4 > 9 || v&0x0F > 9 {
		return 0, false
	}
	return v>>4*10 + v&0x0F, true
}
