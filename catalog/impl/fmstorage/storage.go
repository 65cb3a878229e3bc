package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libcurve/catalog"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func NewFMStorage(root string, storage stg.FileStorage) catalog.Storage {
	return NewFMStorageEx(root, storage, "curves.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) catalog.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		curveStorage: mwf.NewMemWithFile[map[string]*catalog.Record, mwf.Serial, mwf.Lock](
			make(map[string]*catalog.Record), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	curveStorage *mwf.MemWithFile[map[string]*catalog.Record, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Get(name string) (record catalog.Record, err error) {
	impl.curveStorage.Read(func(d map[string]*catalog.Record) {
		r, ok := d[name]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		record = *r
		record.Points = slices.Clone(r.Points)
	})

	return
}

func (impl *fmStorageImpl) Put(name string, record catalog.Record, overwrite bool) (revision uint64, err error) {
	err = impl.curveStorage.Change(func(oldD map[string]*catalog.Record) (map[string]*catalog.Record, error) {
		if len(oldD) == 0 {
			oldD = make(map[string]*catalog.Record)
		}

		if _, ok := oldD[name]; ok && !overwrite {
			return nil, commerr.ErrAlreadyExists
		}

		record.Revision = snowflake.ID()
		record.Points = slices.Clone(record.Points)
		oldD[name] = &record

		revision = record.Revision

		return oldD, nil
	})

	return
}

func (impl *fmStorageImpl) Delete(name string) error {
	return impl.curveStorage.Change(func(oldD map[string]*catalog.Record) (map[string]*catalog.Record, error) {
		if _, ok := oldD[name]; !ok {
			return nil, commerr.ErrNotFound
		}

		delete(oldD, name)

		return oldD, nil
	})
}

func (impl *fmStorageImpl) Names() (names []string, err error) {
	impl.curveStorage.Read(func(d map[string]*catalog.Record) {
		names = maps.Keys(d)
	})

	slices.Sort(names)

	return
}
