package smbios

// ManagementDeviceThreshold decodes a Management Device Threshold Data
// structure (type 36). All six thresholds use 0x8000 for unavailable.
type ManagementDeviceThreshold struct {
	s *Structure
}

func (t *ManagementDeviceThreshold) Structure() *Structure { return t.s }

func (t *ManagementDeviceThreshold) LowerThresholdNonCritical() (uint16, bool) {
	return t.threshold(0x04)
}

func (t *ManagementDeviceThreshold) UpperThresholdNonCritical() (uint16, bool) {
	return t.threshold(0x06)
}

func (t *ManagementDeviceThreshold) LowerThresholdCritical() (uint16, bool) {
	return t.threshold(0x08)
}

func (t *ManagementDeviceThreshold) UpperThresholdCritical() (uint16, bool) {
	return t.threshold(0x0A)
}

func (t *ManagementDeviceThreshold) LowerThresholdNonRecoverable() (uint16, bool) {
	return t.threshold(0x0C)
}

func (t *ManagementDeviceThreshold) UpperThresholdNonRecoverable() (uint16, bool) {
	return t.threshold(0x0E)
}

func (t *ManagementDeviceThreshold) threshold(off int) (uint16, bool) {
	v, ok := t.s.WordAt(off)
	if !ok || v == 0x8000 {
		return 0, false
	}
	return v, true
}
