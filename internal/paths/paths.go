package paths

import (
	"os"
	"path/filepath"
)

const (
	// DefaultLogo is the source logo read when --logo is not given.
	DefaultLogo = "assets/logo.png"

	// DefaultIconsDir is the output directory written when --out is
	// not given. It matches the Tauri icon layout.
	DefaultIconsDir = "src-tauri/icons"

	DirPerm  = 0755
	FilePerm = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to
// avoid partial writes. The parent directory is created if needed and
// an existing file at path is overwritten.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
