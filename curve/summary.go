package curve

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the sampled values of a Function.
type Summary struct {
	Count    int     `yaml:"count" json:"count"`
	MinCoord float64 `yaml:"minCoord" json:"minCoord"`
	MaxCoord float64 `yaml:"maxCoord" json:"maxCoord"`
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Mean     float64 `yaml:"mean" json:"mean"`
	Median   float64 `yaml:"median" json:"median"`
}

func (f *Function) Describe() (s Summary, err error) {
	minCoord, maxCoord, ok := f.store.bounds()
	if !ok {
		err = fmt.Errorf("%w: cannot describe a function without points", ErrTooFewPoints)

		return
	}

	_, values := f.SortedPoints()
	data := stats.Float64Data(values)

	s.Count = len(values)
	s.MinCoord = minCoord
	s.MaxCoord = maxCoord

	if s.Min, err = data.Min(); err != nil {
		return
	}

	if s.Max, err = data.Max(); err != nil {
		return
	}

	if s.Mean, err = data.Mean(); err != nil {
		return
	}

	s.Median, err = data.Median()

	return
}
