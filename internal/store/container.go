// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	filePermissions os.FileMode = 0o600
	dirPermissions  os.FileMode = 0o700
)

// fileContainerStore is the filesystem implementation of [ContainerStore].
type fileContainerStore struct {
	path string
}

// NewContainerStore constructs a [ContainerStore] persisting the container
// at path. The parent directory is created lazily on the first Save.
func NewContainerStore(path string) ContainerStore {
	return &fileContainerStore{path: path}
}

func (s *fileContainerStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *fileContainerStore) Load() ([]byte, error) {
	return s.LoadFrom(s.path)
}

func (s *fileContainerStore) LoadFrom(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read container file: %w", err)
	}
	return data, nil
}

// Save writes the container to a uniquely named temporary file in the same
// directory, then renames it over the real path. The rename is what makes
// the write a whole-file replacement: readers only ever see the previous
// container or the new one, never a partial write.
func (s *fileContainerStore) Save(container []byte) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create container dir: %w", err)
		}
	}

	tmp := s.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, container, filePermissions); err != nil {
		return fmt.Errorf("write container file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace container file: %w", err)
	}

	return nil
}

func (s *fileContainerStore) Path() string {
	return s.path
}
