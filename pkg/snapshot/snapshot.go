// Package snapshot compares JSON encodings against golden files kept in testdata/
package snapshot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv is the environment variable that rewrites golden files instead of comparing them
const UpdateEnv = "UTH_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by Validate
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// Path returns the golden file for a snapshot name
func Path(name string) string {
	return filepath.Join("testdata", name+".golden.json")
}

// Validate asserts that obj encodes to the same indented JSON as the golden file
// A missing golden file is written and the check passes
func Validate(t TestingT, name string, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot %s: %v", name, err)
		return false
	}

	filename := Path(name)
	expects, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) || os.Getenv(UpdateEnv) == "1" {
		if err := write(filename, actual); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
			return false
		}

		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
		return false
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s (set %s=1 to update)", filename, UpdateEnv)
		return false
	}

	return true
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
