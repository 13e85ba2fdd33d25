package testutils

import (
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// NewTempFileWithContents writes contents into a new temp file and returns its
// path. The file is removed when the test finishes. Errors are fatal.
func NewTempFileWithContents(t testing.TB, contents []byte) string {
	t.Helper()

	pattern := strings.ReplaceAll(t.Name(), string(os.PathSeparator), "_")
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatal(errors.Wrap(err, "cannot create temp file"))
	}
	fn := f.Name()
	t.Cleanup(func() {
		if err := os.Remove(fn); err != nil && !os.IsNotExist(err) {
			t.Log(errors.Wrapf(err, "cannot remove test file %s", fn))
		}
	})

	if _, err := f.Write(contents); err != nil {
		f.Close()
		t.Fatal(errors.Wrapf(err, "cannot write contents into %s", fn))
	}
	if err := f.Close(); err != nil {
		t.Fatal(errors.Wrapf(err, "cannot close test file %s", fn))
	}
	return fn
}
