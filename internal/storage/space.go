package storage

import (
	"fmt"
	"os"
	"path/filepath"

	errs "github.com/manav03panchal/commandkit/internal/errors"
)

// MinFreeSpace is the free space required to open an on-disk database (10MB).
const MinFreeSpace = 10 * 1024 * 1024

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace returns a SystemError wrapping ErrDiskFull when the volume
// holding path has less than min bytes free. If the space can't be
// determined it returns nil.
func CheckDiskSpace(path string, min uint64) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < min {
		return errs.NewSystemErrorWithOp("open database",
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024), min/(1024*1024)),
			errs.ErrDiskFull)
	}
	return nil
}

// existingAncestor returns path, or its nearest ancestor that exists.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
