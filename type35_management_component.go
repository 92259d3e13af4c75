package smbios

// ManagementDeviceComponent decodes a Management Device Component
// structure (type 35).
type ManagementDeviceComponent struct {
	s *Structure
}

func (c *ManagementDeviceComponent) Structure() *Structure { return c.s }

func (c *ManagementDeviceComponent) Description() (string, bool) {
	return c.s.StringAt(0x04)
}

// ManagementDeviceHandle returns the handle of the type 34 structure this
// component belongs to.
func (c *ManagementDeviceComponent) ManagementDeviceHandle() (Handle, bool) {
	return c.s.HandleAt(0x05)
}

// ComponentHandle returns the handle of the probe or cooling device that
// defines this component.
func (c *ManagementDeviceComponent) ComponentHandle() (Handle, bool) {
	return c.s.HandleAt(0x07)
}

// ThresholdHandle returns the handle of the type 36 threshold data for
// this component. 0xFFFF means no threshold data is associated.
func (c *ManagementDeviceComponent) ThresholdHandle() (Handle, bool) {
	v, ok := c.s.HandleAt(0x09)
	if !ok || v == 0xFFFF {
		return 0, false
	}
	return v, true
}
