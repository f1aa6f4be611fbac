package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/hearth/pkg/types"
)

// ErrDestinationExists is returned by CopyTree when the destination is
// anything other than a missing path or an empty directory.
var ErrDestinationExists = errors.New("destination exists and is not an empty directory")

// Exists reports whether path exists, following symlinks.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsEmptyDir reports whether path is a directory without entries.
func IsEmptyDir(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// CopyFile copies src to dst byte for byte. An existing dst file is replaced.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: source is a directory", src)
	}
	if dstInfo, err := fsys.Stat(dst); err == nil && dstInfo.IsDir() {
		return fmt.Errorf("copy %s: destination %s is a directory", src, dst)
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// CopyTree recursively copies the directory src to dst. dst must either not
// exist or be an empty directory; copying onto an existing tree is rejected
// with ErrDestinationExists.
func CopyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("copy %s: source is not a directory", src)
	}

	if _, err := fsys.Lstat(dst); err == nil {
		empty, err := IsEmptyDir(fsys, dst)
		if err != nil {
			return err
		}
		if !empty {
			return fmt.Errorf("copy %s to %s: %w", src, dst, ErrDestinationExists)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return copyTree(fsys, src, dst, info.Mode().Perm())
}

func copyTree(fsys types.FS, src, dst string, perm fs.FileMode) error {
	if err := fsys.MkdirAll(dst, perm|0700); err != nil {
		return fmt.Errorf("making dir %s: %w", dst, err)
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())

		info, err := fsys.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("copy %s: %w", srcPath, err)
		}
		if info.IsDir() {
			if err := copyTree(fsys, srcPath, dstPath, info.Mode().Perm()); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(fsys, srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// Move renames src to dst. When the rename fails (for example across
// devices) it falls back to copying src and then removing it.
func Move(fsys types.FS, src, dst string) error {
	renameErr := fsys.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return renameErr
	}
	if info.IsDir() {
		err = CopyTree(fsys, src, dst)
	} else {
		err = CopyFile(fsys, src, dst)
	}
	if err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}
	return fsys.RemoveAll(src)
}
