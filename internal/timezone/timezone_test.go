package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	loc, err := Load("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC.String(), loc.String())

	_, err = Load("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Nowhere/Town"))
}

func TestLoadDefault(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())
}
