package thermolog

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/imgio"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"k8s.io/klog/v2"
)

var (
	plotTickFormat = "2006-01-02 15:04:05"
	plotQuality    = 90
)

// complete drops records missing a capture time or either temperature and
// sorts the rest ascending by capture time.
func complete(recs []*Record) []*Record {
	rs := []*Record{}
	for _, r := range recs {
		if r.Taken == nil || r.TempMax == nil || r.TempMin == nil {
			continue
		}
		rs = append(rs, r)
	}

	sort.Slice(rs, func(i, j int) bool {
		return rs[i].Taken.Before(*rs[j].Taken)
	})

	return rs
}

// Plot renders the max/min temperature series over capture time to
// c.PlotFile as a JPEG, overwriting any previous chart.
func Plot(c *Config, recs []*Record) error {
	rs := complete(recs)
	if len(rs) == 0 {
		klog.Infof("no complete records to plot")
		return nil
	}

	p := plot.New()
	p.Title.Text = c.PlotTitle
	p.X.Label.Text = "Measurement time"
	p.Y.Label.Text = "Temperature (°C)"
	p.X.Tick.Marker = plot.TimeTicks{Format: plotTickFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	maxs := make(plotter.XYs, len(rs))
	mins := make(plotter.XYs, len(rs))
	for i, r := range rs {
		x := float64(r.Taken.Unix())
		maxs[i] = plotter.XY{X: x, Y: *r.TempMax}
		mins[i] = plotter.XY{X: x, Y: *r.TempMin}
	}

	maxLine, err := plotter.NewLine(maxs)
	if err != nil {
		return fmt.Errorf("max series: %w", err)
	}
	maxLine.Color = color.RGBA{R: 0xd6, G: 0x28, B: 0x28, A: 0xff}

	minLine, err := plotter.NewLine(mins)
	if err != nil {
		return fmt.Errorf("min series: %w", err)
	}
	minLine.Color = color.RGBA{R: 0x1f, G: 0x4e, B: 0xd6, A: 0xff}

	p.Add(plotter.NewGrid(), maxLine, minLine)
	p.Legend.Add("max temperature", maxLine)
	p.Legend.Add("min temperature", minLine)
	p.Legend.Top = true

	canvas := vgimg.New(10*vg.Inch, 5*vg.Inch)
	p.Draw(draw.New(canvas))

	if err := imgio.Save(c.PlotFile, canvas.Image(), imgio.JPEGEncoder(plotQuality)); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	klog.Infof("plotted %d records to %s", len(rs), c.PlotFile)
	return nil
}
