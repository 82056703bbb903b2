// Package thermolog extracts embedded metadata from thermal-camera images,
// charts the measured temperature range over time, and exports a tabular report.
package thermolog

import (
	"time"
)

// Config holds configuration for a thermolog run.
type Config struct {
	// InDir is the directory holding the source images.
	InDir string
	// OutFile is the path of the XLSX report to write.
	OutFile string
	// PlotFile is the path of the chart image to write.
	PlotFile string
	// PlotTitle is the title drawn above the chart.
	PlotTitle string
	// ArchiveDir, when set, receives a copy of every successfully parsed image.
	ArchiveDir string
}

// Record is the metadata extracted from a single image. FileName is always
// set; the remaining fields are nil (or the notAvailable marker) when the
// image did not carry the tag or it could not be parsed.
type Record struct {
	Path     string
	FileName string

	// Taken is the capture time with its timezone offset stripped, keeping
	// the original wall-clock reading.
	Taken *time.Time

	FocalLength string

	// TempMax and TempMin are in degrees Celsius, rounded to 2 decimals.
	TempMax *float64
	TempMin *float64
}
