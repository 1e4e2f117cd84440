package main

import (
	"errors"

	"github.com/katalvlaran/gatsp/genetic"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNoHistory = errors.New("plot: no generations recorded")

// writeConvergencePlot saves best and mean tour length per generation as an image;
// the format follows the file extension of path.
func writeConvergencePlot(path string, history []genetic.Stats) error {
	if len(history) == 0 {
		return errNoHistory
	}

	p := plot.New()
	p.Title.Text = "Tour length by generation"
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "distance"

	best := make(plotter.XYs, len(history))
	mean := make(plotter.XYs, len(history))
	for i, s := range history {
		best[i].X, best[i].Y = float64(s.Generation), s.BestDistance
		mean[i].X, mean[i].Y = float64(s.Generation), s.MeanDistance
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return err
	}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
