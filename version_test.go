package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "3.2.0", Version{Major: 3, Minor: 2}.String())
	assert.Equal(t, "2.7.1", Version{Major: 2, Minor: 7, Revision: 1}.String())
}

func TestVersionAtLeast(t *testing.T) {
	v := Version{Major: 2, Minor: 7}

	assert.True(t, v.AtLeast(2, 7))
	assert.True(t, v.AtLeast(2, 0))
	assert.True(t, v.AtLeast(1, 9))
	assert.False(t, v.AtLeast(2, 8))
	assert.False(t, v.AtLeast(3, 0))
}
