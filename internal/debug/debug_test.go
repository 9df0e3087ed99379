package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_DiscardsWithoutPath(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.NoError(t, Close())

	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), 0))
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { Close() })

	Logger().Debug("degenerate ruler", "series", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "degenerate ruler"))
	assert.True(t, strings.Contains(string(data), "series=2"))
}
