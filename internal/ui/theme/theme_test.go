package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	Apply(Dark)
	t.Cleanup(func() { Apply(Dark) })

	assert.Equal(t, "light", Toggle().Name)
	assert.Equal(t, Light.Text, Text)
	assert.Equal(t, "dark", Toggle().Name)
	assert.Equal(t, Dark.Text, Text)
}

func TestByName(t *testing.T) {
	p, err := ByName("light")
	require.NoError(t, err)
	assert.Equal(t, Light.Name, p.Name)

	_, err = ByName("sepia")
	assert.Error(t, err)
}
