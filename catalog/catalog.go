package catalog

import (
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurve/curve"
)

func NewCatalog(storage Storage, logger l.Wrapper) Catalog {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "catalogImpl"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	return &catalogImpl{
		logger:  logger,
		storage: storage,
	}
}

type catalogImpl struct {
	logger  l.Wrapper
	storage Storage
}

func (impl *catalogImpl) Save(name string, f *curve.Function) (revision uint64, err error) {
	return impl.SaveEx(name, f, true)
}

func (impl *catalogImpl) SaveEx(name string, f *curve.Function, overwrite bool) (revision uint64, err error) {
	if name == "" || f == nil {
		err = commerr.ErrInvalidArgument

		return
	}

	interpolation, extrapolation := f.Modes()

	revision, err = impl.storage.Put(name, Record{
		Points:        f.Points(),
		Interpolation: interpolation,
		Extrapolation: extrapolation,
		At:            time.Now(),
	}, overwrite)
	if err != nil {
		impl.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("save failed")
	}

	return
}

// Load rebuilds the curve stored under name. opts are applied after the
// stored modes, so they may override them.
func (impl *catalogImpl) Load(name string, opts ...curve.Option) (*curve.Function, error) {
	record, err := impl.storage.Get(name)
	if err != nil {
		return nil, err
	}

	return curve.New(append([]curve.Option{
		curve.WithPoints(record.Points...),
		curve.WithInterpolation(record.Interpolation),
		curve.WithExtrapolation(record.Extrapolation),
		curve.WithLogger(impl.logger),
	}, opts...)...)
}

func (impl *catalogImpl) Revision(name string) (uint64, error) {
	record, err := impl.storage.Get(name)
	if err != nil {
		return 0, err
	}

	return record.Revision, nil
}

func (impl *catalogImpl) Delete(name string) error {
	return impl.storage.Delete(name)
}

func (impl *catalogImpl) Names() ([]string, error) {
	return impl.storage.Names()
}
