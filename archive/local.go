// archive/local.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend archives plans to a directory on disk, the default when
// no cloud bucket is configured.
type LocalBackend struct {
	dir string
}

func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &LocalBackend{dir: dir}, nil
}

func (l *LocalBackend) StoreObject(path string, object any) (int64, error) {
	full := filepath.Join(l.dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(full)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return encodeObject(f, object)
}

func (l *LocalBackend) ReadObject(path string, result any) error {
	f, err := os.Open(filepath.Join(l.dir, path))
	if err != nil {
		return err
	}
	defer f.Close()
	return decodeObject(f, result)
}

func (l *LocalBackend) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	root := filepath.Join(l.dir, prefix)
	err := filepath.WalkDir(l.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(path, root) {
			rel, err := filepath.Rel(l.dir, path)
			if err != nil {
				return err
			}
			names = append(names, rel)
		}
		return nil
	})
	return names, err
}

func (l *LocalBackend) Close() error { return nil }
