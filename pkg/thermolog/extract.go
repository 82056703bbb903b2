package thermolog

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/barasher/go-exiftool"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// exifDate layouts, most specific first: exiftool emits
// "YYYY:MM:DD HH:MM:SS" with an optional fractional second and offset.
var exifDateLayouts = []string{
	"2006:01:02 15:04:05.999999-07:00",
	"2006:01:02 15:04:05.999999",
}

const notAvailable = "N/A"

// MetadataSource reads the embedded tags of a single image file.
type MetadataSource interface {
	Extract(path string) (map[string]any, error)
	Close() error
}

// ExiftoolSource is a MetadataSource backed by a long-running exiftool
// process. Extractions are synchronous, one file at a time.
type ExiftoolSource struct {
	et *exiftool.Exiftool
}

// NewExiftoolSource fails when exiftool is not on PATH.
func NewExiftoolSource() (*ExiftoolSource, error) {
	if _, err := exec.LookPath("exiftool"); err != nil {
		return nil, fmt.Errorf("exiftool not found in PATH: %w", err)
	}

	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}

	return &ExiftoolSource{et: et}, nil
}

func (s *ExiftoolSource) Extract(path string) (map[string]any, error) {
	fis := s.et.ExtractMetadata(path)
	if len(fis) == 0 {
		return nil, fmt.Errorf("no metadata output for %q", path)
	}

	fi := fis[0]
	if fi.Err != nil {
		return nil, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	return fi.Fields, nil
}

func (s *ExiftoolSource) Close() error {
	return s.et.Close()
}

// discover lists the image files at the top level of dir. Matching is
// case-sensitive on purpose: .JPG and friends are not picked up.
func discover(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var photos []string
	err = godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if path == dir {
					return nil
				}
				return godirwalk.SkipThis
			}

			switch filepath.Ext(path) {
			case ".jpg", ".jpeg", ".png":
				photos = append(photos, path)
			}

			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	return photos, nil
}

// Extract builds one Record per image in c.InDir whose metadata src can
// read. Unreadable files are skipped without failing the run.
func Extract(c *Config, src MetadataSource) ([]*Record, error) {
	photos, err := discover(c.InDir)
	if err != nil {
		return nil, err
	}

	if len(photos) == 0 {
		klog.Infof("no images found in %s", c.InDir)
		return []*Record{}, nil
	}

	recs := make([]*Record, 0, len(photos))
	skipped := 0

	for _, p := range photos {
		fields, err := src.Extract(p)
		if err != nil {
			klog.V(1).Infof("skipping %s: %v", p, err)
			skipped++
			continue
		}

		r := &Record{
			Path:        p,
			FileName:    filepath.Base(p),
			FocalLength: notAvailable,
		}

		if v, ok := fields["FocalLength"]; ok {
			r.FocalLength = fmt.Sprintf("%v", v)
		}

		if s, ok := fields["DateTimeOriginal"].(string); ok {
			r.Taken = parseCaptureTime(s)
		}

		r.TempMax = kelvinToCelsius(fields["ImageTemperatureMax"])
		r.TempMin = kelvinToCelsius(fields["ImageTemperatureMin"])

		recs = append(recs, r)
	}

	if skipped > 0 {
		klog.Infof("skipped %d of %d images with unreadable metadata", skipped, len(photos))
	}

	return recs, nil
}

// parseCaptureTime returns the wall-clock reading of an exiftool timestamp
// with any timezone offset dropped, or nil when it does not parse.
func parseCaptureTime(s string) *time.Time {
	for _, layout := range exifDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}

		naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		return &naive
	}

	return nil
}

// kelvinToCelsius converts a Kelvin tag value to Celsius rounded to 2
// decimals. Missing or non-numeric input yields nil.
func kelvinToCelsius(v any) *float64 {
	var k float64

	switch n := v.(type) {
	case float64:
		k = n
	case float32:
		k = float64(n)
	case int:
		k = float64(n)
	case int64:
		k = float64(n)
	default:
		return nil
	}

	c := math.Round((k-273.15)*100) / 100
	return &c
}
