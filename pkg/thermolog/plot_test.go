package thermolog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func completeRecord(name string, taken time.Time, tmax, tmin float64) *Record {
	return &Record{
		FileName:    name,
		Taken:       timePtr(taken),
		FocalLength: "13.0 mm",
		TempMax:     floatPtr(tmax),
		TempMin:     floatPtr(tmin),
	}
}

func TestCompleteFiltersAndSorts(t *testing.T) {
	later := completeRecord("b.jpg", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 40, 20)
	earlier := completeRecord("a.jpg", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 45, 25)
	noTime := &Record{FileName: "no-time.jpg", TempMax: floatPtr(30), TempMin: floatPtr(10)}
	noMax := &Record{FileName: "no-max.jpg", Taken: timePtr(time.Now()), TempMin: floatPtr(10)}
	noMin := &Record{FileName: "no-min.jpg", Taken: timePtr(time.Now()), TempMax: floatPtr(30)}

	got := complete([]*Record{later, noTime, earlier, noMax, noMin})

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].FileName != "a.jpg" || got[1].FileName != "b.jpg" {
		t.Errorf("order = %s, %s; want a.jpg, b.jpg (ascending by capture time)", got[0].FileName, got[1].FileName)
	}
}

func TestPlotWritesFile(t *testing.T) {
	c := &Config{
		PlotFile:  filepath.Join(t.TempDir(), "out.jpg"),
		PlotTitle: "test chart",
	}
	recs := []*Record{
		completeRecord("b.jpg", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 40, 20),
		completeRecord("a.jpg", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 45, 25),
	}

	if err := Plot(c, recs); err != nil {
		t.Fatalf("Plot: %v", err)
	}

	fi, err := os.Stat(c.PlotFile)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestPlotSingleRecord(t *testing.T) {
	c := &Config{
		PlotFile:  filepath.Join(t.TempDir(), "single.jpg"),
		PlotTitle: "test chart",
	}
	recs := []*Record{
		completeRecord("only.jpg", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 26.85, 21.85),
	}

	if err := Plot(c, recs); err != nil {
		t.Fatalf("Plot with one record: %v", err)
	}
	if _, err := os.Stat(c.PlotFile); err != nil {
		t.Errorf("stat chart: %v", err)
	}
}

func TestPlotNoCompleteRecords(t *testing.T) {
	c := &Config{
		PlotFile:  filepath.Join(t.TempDir(), "none.jpg"),
		PlotTitle: "test chart",
	}
	recs := []*Record{
		{FileName: "incomplete.jpg", TempMax: floatPtr(30)},
	}

	if err := Plot(c, recs); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if _, err := os.Stat(c.PlotFile); !os.IsNotExist(err) {
		t.Errorf("chart file should not exist, stat err = %v", err)
	}
}
