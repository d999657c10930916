package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesEmbeddedCharacters(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	characters := cat.List()
	require.NotEmpty(t, characters)

	seen := make(map[string]bool, len(characters))
	for _, c := range characters {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Bio)
		assert.NotEmpty(t, c.ImageURL)
		assert.Greater(t, c.Age, 0)
		assert.False(t, seen[c.ID], "duplicate character id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestGetByID(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	pepe, ok := cat.GetByID("pepe-01")
	require.True(t, ok)
	assert.Equal(t, "pepe-01", pepe.ID)

	_, ok = cat.GetByID("delisted-coin")
	assert.False(t, ok)
}

func TestPersona_FallsBackForUnknownID(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	persona := cat.Persona("pepe-01")
	assert.NotEmpty(t, persona.Name)
	assert.NotEmpty(t, persona.Bio)

	fallback := cat.Persona("delisted-coin")
	assert.Equal(t, "Mystery Degen", fallback.Name)
	assert.Equal(t, "DIAMOND HANDS", fallback.Trait)
	assert.NotEmpty(t, fallback.Bio)
}
