package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	a := assert.New(t)

	wd, _ := os.Getwd()
	dir := t.TempDir()
	a.NoError(os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	obj := map[string]int{"ante": 10}
	a.True(Validate(t, "first", obj))

	b, err := os.ReadFile(filepath.Join(dir, "testdata", "first.golden.json"))
	a.NoError(err)
	a.Equal("{\n  \"ante\": 10\n}\n", string(b))

	a.True(Validate(t, "first", obj))

	mock := &recordingT{}
	a.False(Validate(mock, "first", map[string]int{"ante": 20}))
	a.Len(mock.errors, 1)
	a.Len(mock.logs, 1)
}

type recordingT struct {
	errors []string
	logs   []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Fatalf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Logf(format string, args ...interface{}) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}
