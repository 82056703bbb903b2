package main

import (
	"flag"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	thermolog "github.com/krupma06/thermolog/pkg/thermolog"
)

var (
	inDir      = flag.String("in", "", "Location of the thermal image directory")
	outFile    = flag.String("out", "metadata.xlsx", "Path of the XLSX report to write")
	plotFile   = flag.String("plot", "temperature_plot.jpg", "Path of the chart image to write")
	title      = flag.String("title", "Thermal image temperatures over time", "Title of the chart")
	archiveDir = flag.String("archive", "", "Copy successfully parsed images into this directory")
	watchFlag  = flag.Bool("watch", false, "watch for changes to the image directory and rebuild")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" {
		klog.Exitf("--in is a required flag")
	}

	c := &thermolog.Config{
		InDir:      *inDir,
		OutFile:    *outFile,
		PlotFile:   *plotFile,
		PlotTitle:  *title,
		ArchiveDir: *archiveDir,
	}

	src, err := thermolog.NewExiftoolSource()
	if err != nil {
		klog.Exitf("exiftool failed: %v", err)
	}
	defer src.Close()

	if err := run(c, src); err != nil {
		klog.Exitf("run failed: %v", err)
	}

	if *watchFlag {
		if err := watch(c, src); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// run executes the extract -> plot -> report -> archive pipeline once.
func run(c *thermolog.Config, src thermolog.MetadataSource) error {
	recs, err := thermolog.Extract(c, src)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if err := thermolog.Plot(c, recs); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	if err := thermolog.WriteReport(c, recs); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := thermolog.Archive(c, recs); err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	return nil
}

// watch watches the image directory for changes and re-runs the pipeline
func watch(c *thermolog.Config, src thermolog.MetadataSource) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					klog.Infof("change detected: %s", event)
					if err := run(c, src); err != nil {
						klog.Exitf("rebuild failed: %v", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Errorf("watch error: %v", err)
			}
		}
	}()

	if err := w.Add(c.InDir); err != nil {
		return fmt.Errorf("watch %s: %w", c.InDir, err)
	}

	klog.Infof("watching %s ...", c.InDir)
	<-make(chan struct{})
	return nil
}
