package sample

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `id,value
1,100
2,101
3,NA
4,103`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 101, 103}, s.Values())
	assert.False(t, s.HasUncertainty())
}

func TestLoadCSVWithErrors(t *testing.T) {
	csvData := `group,length,length_se
A,10.1,0.2
B,20.0,0.5
A,10.3,
A,9.9,0.1`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "length"
	opts.ErrorColumn = "length_se"
	opts.IDColumn = "group"
	opts.IDFilter = "A"

	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{10.1, 10.3, 9.9}, s.Values())
	assert.Equal(t, []float64{0.2, 0, 0.1}, s.Errors())
	assert.True(t, s.HasUncertainty())
}

func TestLoadCSVNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.ErrorColumn = "se"

	s, err := LoadCSVFromReader(strings.NewReader("1,0.1\n2,0.2\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Values())
	assert.Equal(t, []float64{0.1, 0.2}, s.Errors())
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("a,b\n1,2\n"), DefaultCSVOptions())
	assert.True(t, errkind.IsValue(err))

	_, err = LoadCSVFromReader(strings.NewReader("value\nNA\n"), DefaultCSVOptions())
	assert.True(t, errkind.IsValue(err))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	s, err := New([]any{1.5, 2.25})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))
	assert.Equal(t, "value,se\n1.5,0\n2.25,0\n", buf.String())

	path := filepath.Join(t.TempDir(), "s.csv")
	require.NoError(t, SaveCSV(s, path))
	opts := DefaultCSVOptions()
	opts.ErrorColumn = "se"
	loaded, err := LoadCSV(path, opts)
	require.NoError(t, err)
	assert.Equal(t, s.Values(), loaded.Values())
}
