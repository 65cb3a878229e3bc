package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurve/catalog"
	"github.com/sgostarter/libcurve/catalog/impl/fmstorage"
	"github.com/sgostarter/libcurve/curve"
	"github.com/sgostarter/libcurve/sampling"
	"gopkg.in/yaml.v3"
)

type namedCurve struct {
	Name         string `yaml:"name"`
	curve.Config `yaml:",inline"`
}

type demoConfig struct {
	Seed    string       `yaml:"seed"`
	Curves  []namedCurve `yaml:"curves"`
	Queries []float64    `yaml:"queries"`
	// Sum lists curve names; the result is their sum plus Offset.
	Sum    []string `yaml:"sum"`
	Offset any      `yaml:"offset"`
	// Store is a directory; when set every curve, and the sum, is saved there.
	Store string `yaml:"store"`
}

func loadDemo(file string) (*demoConfig, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := &demoConfig{}

	if err = yaml.Unmarshal(d, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cfg *demoConfig, w io.Writer, logger l.Wrapper) error {
	var opts []curve.Option

	opts = append(opts, curve.WithLogger(logger))

	if cfg.Seed != "" {
		prng, err := sampling.NewKeyedPRNG([]byte(cfg.Seed))
		if err != nil {
			return err
		}

		opts = append(opts, curve.WithPRNG(prng))
	}

	var cat catalog.Catalog
	if cfg.Store != "" {
		cat = catalog.NewCatalog(fmstorage.NewFMStorage(cfg.Store, nil), logger)
	}

	curves := make(map[string]*curve.Function, len(cfg.Curves))

	for idx := range cfg.Curves {
		c := &cfg.Curves[idx]

		if _, ok := curves[c.Name]; ok {
			return fmt.Errorf("curve %q defined twice", c.Name)
		}

		f, err := curve.NewFromConfig(&c.Config, opts...)
		if err != nil {
			return fmt.Errorf("curve %q: %w", c.Name, err)
		}

		curves[c.Name] = f

		if err = show(w, c.Name, f, cfg.Queries); err != nil {
			return err
		}

		if err = store(w, cat, c.Name, f); err != nil {
			return err
		}
	}

	if len(cfg.Sum) == 0 {
		return nil
	}

	sum, err := sumCurves(curves, cfg.Sum, cfg.Offset)
	if err != nil {
		return err
	}

	if err = show(w, "sum", sum, cfg.Queries); err != nil {
		return err
	}

	return store(w, cat, "sum", sum)
}

func store(w io.Writer, cat catalog.Catalog, name string, f *curve.Function) error {
	if cat == nil {
		return nil
	}

	if _, err := cat.Save(name, f); err != nil {
		return fmt.Errorf("store %q: %w", name, err)
	}

	fmt.Fprintf(w, "saved %s\n", name)

	return nil
}

func sumCurves(curves map[string]*curve.Function, names []string, offset any) (*curve.Function, error) {
	var sum *curve.Function

	for _, name := range names {
		f, ok := curves[name]
		if !ok {
			return nil, fmt.Errorf("sum: unknown curve %q", name)
		}

		if sum == nil {
			sum = f.Clone()

			continue
		}

		if err := sum.AddAssign(curve.FunctionOperand{Function: f}); err != nil {
			return nil, fmt.Errorf("sum: %s: %w", name, err)
		}
	}

	if offset != nil {
		op, err := curve.OperandOf(offset)
		if err != nil {
			return nil, fmt.Errorf("sum: offset: %w", err)
		}

		if err = sum.AddAssign(op); err != nil {
			return nil, fmt.Errorf("sum: offset: %w", err)
		}
	}

	return sum, nil
}

func show(w io.Writer, name string, f *curve.Function, queries []float64) error {
	fmt.Fprintf(w, "== %s %s\n", name, f)

	coords, values := f.SortedPoints()
	fmt.Fprintf(w, "coords: %v\n", coords)
	fmt.Fprintf(w, "values: %v\n", values)

	if f.Len() == 0 {
		return nil
	}

	s, err := f.Describe()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "summary: count=%d coords=[%v, %v] min=%v max=%v mean=%v median=%v\n",
		s.Count, s.MinCoord, s.MaxCoord, s.Min, s.Max, s.Mean, s.Median)

	if len(queries) == 0 {
		return nil
	}

	vs, err := f.InterpAll(queries)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for i, q := range queries {
		fmt.Fprintf(w, "f(%v) = %v\n", q, vs[i])
	}

	return nil
}
