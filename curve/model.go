package curve

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/commerr"
)

type Point struct {
	Coord float64 `yaml:"coord" json:"coord"`
	Value float64 `yaml:"value" json:"value"`
}

// Mode selects how a value is produced between or beyond the sampled points.
type Mode int

const (
	ModeNearestNeighbor Mode = iota
	ModeLinear
)

const (
	modeNameNearestNeighbor = "nearestNeighbor"
	modeNameLinear          = "linear"
)

// ParseMode accepts the canonical names, case-insensitively. An empty string
// selects ModeNearestNeighbor.
func ParseMode(s string) (Mode, error) {
	switch {
	case s == "", strings.EqualFold(s, modeNameNearestNeighbor):
		return ModeNearestNeighbor, nil
	case strings.EqualFold(s, modeNameLinear):
		return ModeLinear, nil
	}

	return ModeNearestNeighbor, fmt.Errorf("%w: %w: unknown mode %q", ErrValue, commerr.ErrInvalidArgument, s)
}

func (m Mode) Valid() bool {
	return m == ModeNearestNeighbor || m == ModeLinear
}

func (m Mode) String() string {
	switch m {
	case ModeNearestNeighbor:
		return modeNameNearestNeighbor
	case ModeLinear:
		return modeNameLinear
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %w: unknown mode %d", ErrValue, commerr.ErrInvalidArgument, int(m))
	}

	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = mode

	return nil
}
