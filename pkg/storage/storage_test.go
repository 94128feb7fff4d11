package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	v := map[string]float64{"jacc": 0.5}

	data, err := Encode(v, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"jacc": 0.5}`, string(data))

	data, err = Encode(v, "yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, "jacc: 0.5\n", string(data))

	_, err = Encode(v, "csv")
	assert.Error(t, err)
}

func TestSaveFile(t *testing.T) {
	var buf bytes.Buffer
	s := &Storage{Stdout: &buf}

	require.NoError(t, s.SaveFile("-", []byte("hello")))
	assert.Equal(t, "hello", buf.String())

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, s.SaveFile(path, []byte("{}")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	assert.Error(t, s.SaveFile(filepath.Join(t.TempDir(), "missing", "out.json"), nil))
}
