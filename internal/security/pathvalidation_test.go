package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePathWithinDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	safeDir := filepath.Join(tmpDir, "safe")
	unsafeDir := filepath.Join(tmpDir, "unsafe")
	require.NoError(t, os.MkdirAll(safeDir, 0o755))
	require.NoError(t, os.MkdirAll(unsafeDir, 0o755))
	require.NoError(t, os.Symlink(unsafeDir, filepath.Join(safeDir, "evil-symlink")))

	tests := []struct {
		name     string
		filePath string
		wantErr  bool
	}{
		{"file in dir", filepath.Join(safeDir, "chart.svg"), false},
		{"nested new dir", filepath.Join(safeDir, "out", "chart.png"), false},
		{"dot dot escape", filepath.Join(safeDir, "..", "chart.svg"), true},
		{"sibling dir", filepath.Join(unsafeDir, "chart.svg"), true},
		{"through symlink", filepath.Join(safeDir, "evil-symlink", "chart.svg"), true},
		{"through symlink new dir", filepath.Join(safeDir, "evil-symlink", "new", "chart.svg"), true},
		{"absolute elsewhere", "/etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathWithinDirectory(tt.filePath, safeDir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathEscape)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	assert.NoError(t, ValidateOutputPath("strategy-canvas.png"))
	assert.NoError(t, ValidateOutputPath(filepath.Join("charts", "canvas.svg")))
	assert.NoError(t, ValidateOutputPath(filepath.Join(t.TempDir(), "canvas.png")))
	assert.ErrorIs(t, ValidateOutputPath("/etc/strategy-canvas.png"), ErrPathEscape)
}
