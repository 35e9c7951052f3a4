package main

import (
	"fmt"
	"os"
)

// fileSet holds the files opened for a run so they can be closed together.
type fileSet struct {
	files []*os.File
}

func (s *fileSet) add(f *os.File) {
	s.files = append(s.files, f)
}

// Close closes every file and returns the first error, naming its file.
func (s *fileSet) Close() error {
	var first error
	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", f.Name(), err)
		}
	}
	s.files = nil
	return first
}
