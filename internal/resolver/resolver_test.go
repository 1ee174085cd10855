package resolver

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestFindModuleRoot_AtRoot(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))

	got, err := findModuleRoot(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestFindModuleRoot_FromSubdirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))
	sub := filepath.Join(tmp, "internal", "bird")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := findModuleRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, tmp, got)
}

func TestPackagePattern(t *testing.T) {
	root := filepath.FromSlash("/work/mod")

	got, err := packagePattern(root, root)
	require.NoError(t, err)
	assert.Equal(t, "./...", got)

	got, err = packagePattern(root, filepath.Join(root, "internal", "bird"))
	require.NoError(t, err)
	assert.Equal(t, "./internal/bird/...", got)
}

func TestResolve_Subdirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module test\n"), 0o644))
	sub := filepath.Join(tmp, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	target, err := Resolve(sub, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, tmp, target.ModuleRoot)
	assert.Equal(t, "./pkg/...", target.Pattern)
}

func TestResolve_Errors(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"url", "https://github.com/example/repo", "remote sources are not supported"},
		{"ssh", "git@github.com:example/repo.git", "remote sources are not supported"},
		{"missing", filepath.Join(tmp, "nope"), "stat"},
		{"file", file, "is not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input, discardLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
