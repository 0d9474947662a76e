package model

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const DefaultExt = ".tflite"

// DirStore looks for <Dir>/<name><Ext>. Ext defaults to DefaultExt.
type DirStore struct {
	Dir string
	Ext string
}

var _ Store = DirStore{}

func (s DirStore) Path(name string) string {
	return filepath.Join(s.Dir, name+coalesceExt(s.Ext))
}

func (s DirStore) Latest(_ context.Context, name string) (Model, bool, error) {
	p := s.Path(name)
	fi, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Model{}, false, nil
	}
	if err != nil {
		return Model{}, false, err
	}
	if fi.IsDir() || fi.Size() == 0 {
		return Model{}, false, nil
	}
	return Model{Name: name, Path: p}, true, nil
}

func coalesceExt(ext string) string {
	if ext == "" {
		return DefaultExt
	}
	return ext
}
