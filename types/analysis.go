package types

import (
	"os"
	"path"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ReturnAnalyzer collects the undiscounted return of every episode
type ReturnAnalyzer struct {
	returns []float64
}

var _ Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{returns: make([]float64, 0)}
}

func (r *ReturnAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	r.returns = append(r.returns, t.Return())
}

func (r *ReturnAnalyzer) DataSet() DataSet {
	return append([]float64{}, r.returns...)
}

func (r *ReturnAnalyzer) Reset() {
	r.returns = make([]float64, 0)
}

// LengthAnalyzer collects the number of steps of every episode
type LengthAnalyzer struct {
	lengths []float64
}

var _ Analyzer = &LengthAnalyzer{}

func NewLengthAnalyzer() *LengthAnalyzer {
	return &LengthAnalyzer{lengths: make([]float64, 0)}
}

func (l *LengthAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	l.lengths = append(l.lengths, float64(t.Len()))
}

func (l *LengthAnalyzer) DataSet() DataSet {
	return append([]float64{}, l.lengths...)
}

func (l *LengthAnalyzer) Reset() {
	l.lengths = make([]float64, 0)
}

// OutcomeAnalyzer counts the episodes whose last step satisfies each
// of the named predicates
type OutcomeAnalyzer struct {
	predicates map[string]StepPredicate
	counts     map[string]int
}

var _ Analyzer = &OutcomeAnalyzer{}

func NewOutcomeAnalyzer(predicates map[string]StepPredicate) *OutcomeAnalyzer {
	o := &OutcomeAnalyzer{predicates: predicates}
	o.Reset()
	return o
}

func (o *OutcomeAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	if t.Len() == 0 {
		return
	}
	last := t.Len() - 1
	_, _, next, _ := t.Get(last)
	result := &StepResult{
		State:  next,
		Reward: t.Reward(last),
		Done:   t.Done(),
		Info:   t.Info(last),
	}
	for name, p := range o.predicates {
		if p(result) {
			o.counts[name] += 1
		}
	}
}

func (o *OutcomeAnalyzer) DataSet() DataSet {
	out := make(map[string]int, len(o.counts))
	for k, v := range o.counts {
		out[k] = v
	}
	return out
}

func (o *OutcomeAnalyzer) Reset() {
	o.counts = make(map[string]int)
	for name := range o.predicates {
		o.counts[name] = 0
	}
}

// SummaryComparator logs the mean and standard deviation of []float64 datasets
func SummaryComparator(logger logrus.FieldLogger, metric string) Comparator {
	return func(run int, names []string, ds []DataSet) {
		for i, name := range names {
			values, ok := ds[i].([]float64)
			if !ok || len(values) == 0 {
				continue
			}
			mean, std := stat.MeanStdDev(values, nil)
			logger.WithFields(logrus.Fields{
				"run":        run,
				"experiment": name,
				"metric":     metric,
				"mean":       mean,
				"stddev":     std,
				"episodes":   len(values),
			}).Info("summary")
		}
	}
}

// OutcomeComparator logs the outcome counts of every experiment
func OutcomeComparator(logger logrus.FieldLogger) Comparator {
	return func(run int, names []string, ds []DataSet) {
		for i, name := range names {
			counts, ok := ds[i].(map[string]int)
			if !ok {
				continue
			}
			fields := logrus.Fields{"run": run, "experiment": name}
			for k, v := range counts {
				fields[k] = v
			}
			logger.WithFields(fields).Info("outcomes")
		}
	}
}

// ReturnPlotter plots one line per experiment of a []float64 dataset
// against the episode number
func ReturnPlotter(plotPath, yLabel string, logger logrus.FieldLogger) Comparator {
	return func(run int, names []string, ds []DataSet) {
		if err := os.MkdirAll(plotPath, os.ModePerm); err != nil {
			logger.WithError(err).Error("failed to create plot directory")
			return
		}
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = yLabel
		for i := 0; i < len(names); i++ {
			values, ok := ds[i].([]float64)
			if !ok {
				continue
			}
			points := make(plotter.XYs, len(values))
			for j, v := range values {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		file := path.Join(plotPath, strconv.Itoa(run)+"_"+yLabel+".png")
		if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
			logger.WithError(err).WithField("file", file).Error("failed to save plot")
		}
	}
}
