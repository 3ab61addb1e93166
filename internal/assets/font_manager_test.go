package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestFontManager_CachesFaces(t *testing.T) {
	m, err := NewFontManager()
	require.NoError(t, err)
	defer m.Close()

	a := m.Face(16)
	require.NotNil(t, a)
	assert.Same(t, a, m.Face(16))
	assert.NotSame(t, a, m.Face(12))

	w := font.MeasureString(a, "Backlog")
	assert.Greater(t, w.Ceil(), 0)
}

func TestFontManager_Close(t *testing.T) {
	m, err := NewFontManager()
	require.NoError(t, err)
	m.Face(10)
	m.Close()
	assert.Empty(t, m.faces)
}
