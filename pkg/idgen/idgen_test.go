package idgen

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NewCode_Deterministic(t *testing.T) {
	g := NewWithReader(bytes.NewReader([]byte{0, 1, 2, 35, 36, 71}))

	assert.Equal(t, "AAW012Z0Z", g.NewCode("AAW", 6))
}

func TestGenerator_NewCode_Format(t *testing.T) {
	g := New()
	pattern := regexp.MustCompile(`^AAW[0-9A-Z]{6}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, g.NewCode("AAW", 6))
	}
}

func TestGenerator_NewID(t *testing.T) {
	g := New()

	first := g.NewID("BK-")
	second := g.NewID("BK-")

	require.True(t, strings.HasPrefix(first, "BK-"))
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(strings.TrimPrefix(first, "BK-"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
