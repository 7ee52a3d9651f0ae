package port

import (
	"errors"
	"io/fs"
	"os"
)

// StagedFile is a request file written to local ephemeral storage, awaiting upload.
type StagedFile struct {
	Path     string
	Filename string
	Size     int64
}

// Remove deletes the local copy. Removing an already removed file is not an error.
func (f *StagedFile) Remove() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether the local copy is still present.
func (f *StagedFile) Exists() bool {
	if f == nil || f.Path == "" {
		return false
	}
	_, err := os.Stat(f.Path)
	return err == nil
}
