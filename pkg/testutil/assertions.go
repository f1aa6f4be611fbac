package testutil

import (
	"testing"

	"github.com/arthur-debert/hearth/pkg/types"
)

// AssertFileContent checks that path is a file holding content
func AssertFileContent(t *testing.T, fs types.FS, path, content string) {
	t.Helper()

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Errorf("Expected file %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("File %s: expected %q, got %q", path, content, string(data))
	}
}

// AssertExists checks that path exists
func AssertExists(t *testing.T, fs types.FS, path string) {
	t.Helper()

	if _, err := fs.Stat(path); err != nil {
		t.Errorf("Expected %s to exist: %v", path, err)
	}
}

// AssertNotExists checks that path does not exist
func AssertNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()

	if _, err := fs.Stat(path); err == nil {
		t.Errorf("Expected %s not to exist", path)
	}
}
