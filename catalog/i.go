package catalog

import (
	"time"

	"github.com/sgostarter/libcurve/curve"
)

// Record is the persisted form of a curve.Function.
type Record struct {
	Revision      uint64        `json:"revision" yaml:"revision"`
	Points        []curve.Point `json:"points,omitempty" yaml:"points,omitempty"`
	Interpolation curve.Mode    `json:"interpolation" yaml:"interpolation"`
	Extrapolation curve.Mode    `json:"extrapolation" yaml:"extrapolation"`
	At            time.Time     `json:"at,omitempty" yaml:"at,omitempty"`
}

type Catalog interface {
	// Save stores f under name, replacing any previous curve.
	Save(name string, f *curve.Function) (revision uint64, err error)
	SaveEx(name string, f *curve.Function, overwrite bool) (revision uint64, err error)

	Load(name string, opts ...curve.Option) (*curve.Function, error)
	Revision(name string) (uint64, error)
	Delete(name string) error
	Names() ([]string, error)
}

type Storage interface {
	Get(name string) (Record, error)
	Put(name string, record Record, overwrite bool) (revision uint64, err error)
	Delete(name string) error
	Names() ([]string, error)
}
