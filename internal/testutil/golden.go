package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateGoldenEnv is the environment variable to set to rewrite golden files from actual outputs.
const UpdateGoldenEnv = "MDSCAN_UPDATE_GOLDEN"

// SetUpFromGoldenFile creates a temp file based on the golden file of the current test.
// The file must exist in directory testdata/.
func SetUpFromGoldenFile(t *testing.T) string {
	return SetUpFromGoldenFileNamed(t, t.Name()+".md")
}

// SetUpFromGoldenFileNamed creates a temp file based on the given golden file name.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	dir := t.TempDir()

	in := GoldenFileNamed(t, filename)
	fileOut := filepath.Join(dir, filepath.Base(filename))
	require.NoError(t, os.WriteFile(fileOut, in, 0644))

	return fileOut
}

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(fileOut), 0755))
	require.NoError(t, os.WriteFile(fileOut, []byte(content), 0644))

	return fileOut
}

// SetUpFromFilesContent populates a temp directory with the given files (relative path => content).
func SetUpFromFilesContent(t *testing.T, files map[string]string) string {
	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return dir
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T) []byte {
	return GoldenFileNamed(t, t.Name()+".md")
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

// AssertGolden compares the actual output with the content of the given golden file.
// The golden file is rewritten instead when $MDSCAN_UPDATE_GOLDEN is set.
func AssertGolden(t *testing.T, filename string, actual string) {
	t.Helper()
	path := filepath.Join("testdata", filename)
	if os.Getenv(UpdateGoldenEnv) != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(actual), 0644))
		return
	}
	assert.Equal(t, string(GoldenFileNamed(t, filename)), actual, "output differs from golden file %s", path)
}
