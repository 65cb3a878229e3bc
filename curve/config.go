package curve

import (
	"fmt"
	"os"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

// Config is the loosely typed description of a Function, as read from yaml.
// Points are [coordinate, value] pairs; numbers of any Go kind are accepted.
type Config struct {
	Points        [][]any `yaml:"points,omitempty" json:"points,omitempty"`
	RandomCount   any     `yaml:"randomCount,omitempty" json:"randomCount,omitempty"`
	Interpolation string  `yaml:"interpolation,omitempty" json:"interpolation,omitempty"`
	Extrapolation string  `yaml:"extrapolation,omitempty" json:"extrapolation,omitempty"`
}

func ParseConfig(d []byte) (cfg *Config, err error) {
	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil
	}

	return
}

func LoadConfig(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return ParseConfig(d)
}

// Options validates the loose fields and turns them into typed options.
func (cfg *Config) Options() (opts []Option, err error) {
	interpolation, err := ParseMode(cfg.Interpolation)
	if err != nil {
		return
	}

	extrapolation, err := ParseMode(cfg.Extrapolation)
	if err != nil {
		return
	}

	opts = append(opts, WithInterpolation(interpolation), WithExtrapolation(extrapolation))

	if cfg.Points != nil {
		points := make([]Point, 0, len(cfg.Points))

		for idx, pair := range cfg.Points {
			if len(pair) != 2 {
				err = fmt.Errorf("%w: %w: point %d has %d elements, want [coordinate, value]",
					ErrValue, commerr.ErrInvalidArgument, idx, len(pair))

				return nil, err
			}

			var p Point

			if p.Coord, err = toReal("coordinate", pair[0]); err != nil {
				return nil, err
			}

			if p.Value, err = toReal("value", pair[1]); err != nil {
				return nil, err
			}

			points = append(points, p)
		}

		opts = append(opts, WithPoints(points...))
	}

	if cfg.RandomCount != nil {
		var n int

		if n, err = toCount("random count", cfg.RandomCount); err != nil {
			return nil, err
		}

		opts = append(opts, WithRandomCount(n))
	}

	return
}

// NewFromConfig builds a Function from cfg. opts are applied after the
// options derived from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Function, error) {
	if cfg == nil {
		return New(opts...)
	}

	cfgOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return New(append(cfgOpts, opts...)...)
}
