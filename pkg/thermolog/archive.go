package thermolog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// Archive copies the source image of every record into c.ArchiveDir. It is
// a no-op when no archive directory is configured or nothing was extracted.
func Archive(c *Config, recs []*Record) error {
	if c.ArchiveDir == "" || len(recs) == 0 {
		return nil
	}

	if err := os.MkdirAll(c.ArchiveDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.ArchiveDir, err)
	}

	for _, r := range recs {
		dst := filepath.Join(c.ArchiveDir, r.FileName)
		if err := copy.Copy(r.Path, dst); err != nil {
			return fmt.Errorf("copy %s: %w", r.FileName, err)
		}
	}

	klog.Infof("archived %d images to %s", len(recs), c.ArchiveDir)
	return nil
}
