package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives the named artifacts of a run. Passing it explicitly keeps the
// output location out of package-level state.
type Sink interface {
	Write(name string, data []byte) error
}

// dirSink writes artifacts into one directory, overwriting prior runs.
type dirSink struct {
	dir string
}

// newDirSink creates the directory if absent and returns a sink writing into it.
func newDirSink(dir string) (*dirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}
	return &dirSink{dir: dir}, nil
}

func (s *dirSink) Write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
