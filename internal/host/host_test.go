package host

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHost(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeHost(t, `
name = "medal"

[[option]]
value = "gold"
label = "Gold"

[[option]]
value = "silver"
label = "Silver"
selected = true

[[option]]
value = "bronze"
`)

	sel, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "medal", sel.Name)
	require.Len(t, sel.Options, 3)
	assert.Equal(t, "Gold", sel.Options[0].Label)
	assert.True(t, sel.Options[1].Selected)
	assert.False(t, sel.Options[0].Selected)
	assert.Equal(t, "bronze", sel.Options[2].Label, "label defaults to value")
	assert.False(t, sel.Hidden)
}

func TestLoadFileMarksFirstWhenNoneSelected(t *testing.T) {
	path := writeHost(t, `
[[option]]
value = "a"
[[option]]
value = "b"
`)

	sel, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, sel.Options[0].Selected)
	assert.False(t, sel.Options[1].Selected)
}

func TestLoadFileKeepsEmptyValue(t *testing.T) {
	path := writeHost(t, `
[[option]]
value = ""
label = "Choose..."
selected = true

[[option]]
value = "gold"
`)

	sel, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sel.Options, 2)
	assert.Equal(t, "", sel.Options[0].Value)
	assert.Equal(t, "Choose...", sel.Options[0].Label)
	assert.True(t, sel.Options[0].Selected)
}

func TestLoadFileEmpty(t *testing.T) {
	_, err := LoadFile(writeHost(t, `name = "empty"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseArgs(t *testing.T) {
	sel, err := ParseArgs([]string{"gold:Gold", "silver:Silver", "bronze"}, "silver")
	require.NoError(t, err)
	require.Len(t, sel.Options, 3)
	assert.Equal(t, "Gold", sel.Options[0].Label)
	assert.True(t, sel.Options[1].Selected)
	assert.Equal(t, "bronze", sel.Options[2].Label)
}

func TestParseArgsDefaultsToFirst(t *testing.T) {
	sel, err := ParseArgs([]string{"gold", "silver"}, "")
	require.NoError(t, err)
	assert.True(t, sel.Options[0].Selected)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := ParseArgs(nil, "")
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = ParseArgs([]string{":Gold"}, "")
	assert.Error(t, err)

	_, err = ParseArgs([]string{"gold", "silver"}, "bronze")
	assert.True(t, errors.Is(err, ErrUnknownSelected))
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestUnknownSelectedSuggestsClosest(t *testing.T) {
	_, err := ParseArgs([]string{"gold", "silver", "bronze"}, "slver")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSelected))
	assert.Contains(t, err.Error(), `did you mean "silver"?`)
}

func TestSelect(t *testing.T) {
	sel, err := ParseArgs([]string{"gold", "silver", "bronze"}, "")
	require.NoError(t, err)

	require.NoError(t, Select(sel, "bronze"))
	assert.False(t, sel.Options[0].Selected)
	assert.True(t, sel.Options[2].Selected)

	err = Select(sel, "Gold ")
	assert.True(t, errors.Is(err, ErrUnknownSelected))
	assert.True(t, sel.Options[0].Selected, "falls back to the first entry")
}
