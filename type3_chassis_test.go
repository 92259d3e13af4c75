package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemChassis(t *testing.T) {
	body := []byte{
		0x01, // manufacturer
		0x97, // type: rack mount chassis, lock present
		0x02, // version
		0x03, // serial number
		0x00, // no asset tag
		0x03, // boot-up state: safe
		0x03, // power supply state: safe
		0x03, // thermal state: safe
		0x02, // security status: unknown
		0x00, 0x00, 0x00, 0x00,
		0x02, // height: 2U
		0x02, // two power cords
		0x02, // two contained elements
		0x03, // each three bytes long
	}
	body = append(body, 0x85, 0x01, 0x01, 0x85, 0x01, 0x01) // contained elements
	body = append(body, 0x04)                               // SKU after the element list

	ts := decodeOne(t, 3, body, "Examplecorp", "Rev 2", "CH-4711", "SKU-RACK")
	chassis, ok := As[*SystemChassis](ts)
	require.True(t, ok)

	ct, ok := chassis.ChassisType()
	require.True(t, ok)
	assert.Equal(t, ChassisType(0x17), ct)

	hasLock, ok := chassis.HasLock()
	require.True(t, ok)
	assert.True(t, hasLock)

	_, ok = chassis.AssetTag()
	assert.False(t, ok)

	height, ok := chassis.Height()
	require.True(t, ok)
	assert.Equal(t, uint8(2), height)

	elements, ok := chassis.ContainedElements()
	require.True(t, ok)
	assert.Len(t, elements, 6)

	// The SKU string index floats behind the contained element list.
	sku, ok := chassis.SKUNumber()
	require.True(t, ok)
	assert.Equal(t, "SKU-RACK", sku)
}

func TestSystemChassisWithoutElements(t *testing.T) {
	body := []byte{
		0x01, // manufacturer
		0x03, // type: desktop, no lock
		0x00, // no version
		0x00, // no serial
		0x00, // no asset tag
		0x03, 0x03, 0x03, 0x02,
		0x00, 0x00, 0x00, 0x00,
		0x00, // height unspecified
		0x01, // one power cord
		0x00, // no contained elements
		0x00,
		0x02, // SKU directly after the empty list
	}
	ts := decodeOne(t, 3, body, "Examplecorp", "SKU-DESK")
	chassis, ok := As[*SystemChassis](ts)
	require.True(t, ok)

	hasLock, ok := chassis.HasLock()
	require.True(t, ok)
	assert.False(t, hasLock)

	_, ok = chassis.Height()
	assert.False(t, ok, "zero height is unspecified")

	sku, ok := chassis.SKUNumber()
	require.True(t, ok)
	assert.Equal(t, "SKU-DESK", sku)
}
