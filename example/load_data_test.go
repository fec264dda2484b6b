package example

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	points, err := ReadPoints(strings.NewReader("x,y\n1, 0\n5,0\n-2.5,3e2\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 5, -2.5}, points.Xs)
	assert.Equal(t, []float32{0, 0, 300}, points.Ys)
}

func TestReadPointsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"WrongFieldCount", "1,2\n3,4,5\n", "read error"},
		{"NotANumber", "1,2\nfoo,4\n", "line 2 col 0"},
		{"NaN", "1,NaN\n", "not finite"},
		{"Inf", "Inf,1\n", "not finite"},
		{"Overflow", "1,1e40\n", "line 1 col 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPoints(strings.NewReader(tt.input), false)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestReadPointsEmpty(t *testing.T) {
	points, err := ReadPoints(strings.NewReader(""), false)
	require.NoError(t, err)
	assert.Equal(t, 0, points.Len())
}

func TestLoadPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0\n5,0\n8,0\n"), 0o644))

	points, err := LoadPoints(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, points.Len())

	_, err = LoadPoints(filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.ErrorContains(t, err, "open")
}
