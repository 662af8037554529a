package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// FreeSpace returns the number of bytes available to the user on the
// filesystem holding dir.
func FreeSpace(dir string) (int64, error) {
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to query free space for %s: %w", dir, err)
	}
	return int64(usage.Free), nil
}
