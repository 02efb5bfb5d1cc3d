package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/search"
)

// Sentinel errors for scenario decoding.
var (
	// ErrDuplicateCell indicates a coordinate listed twice among walls or
	// twice among weights.
	ErrDuplicateCell = errors.New("scenario: duplicate cell")

	// ErrOutOfBounds indicates a coordinate that is not a cell of the grid.
	ErrOutOfBounds = errors.New("scenario: position out of bounds")

	// ErrDecode indicates malformed YAML.
	ErrDecode = errors.New("scenario: cannot decode")
)

// Point is a YAML cell coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts p to a grid position.
func (p Point) Position() hexgrid.Position { return hexgrid.Position{X: p.X, Y: p.Y} }

// WeightedPoint is a cell coordinate with its entry cost.
type WeightedPoint struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Weight int `yaml:"weight"`
}

// Scenario is one search setup.
type Scenario struct {
	Rows      int             `yaml:"rows"`
	Cols      int             `yaml:"cols"`
	WideRows  string          `yaml:"wide_rows"`
	Algorithm string          `yaml:"algorithm"`
	Start     Point           `yaml:"start"`
	Target    Point           `yaml:"target"`
	Walls     []Point         `yaml:"walls,omitempty"`
	Weights   []WeightedPoint `yaml:"weights,omitempty"`
}

// Load decodes and validates one scenario from r. Unknown keys are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parity parses WideRows; an empty value means even.
func (sc *Scenario) Parity() (hexgrid.WideRows, error) {
	if sc.WideRows == "" {
		return hexgrid.WideRowsEven, nil
	}
	return hexgrid.ParseWideRows(sc.WideRows)
}

// Search parses Algorithm; an empty value means breadth-first.
func (sc *Scenario) Search() (search.Algorithm, error) {
	if sc.Algorithm == "" {
		return search.BreadthFirst, nil
	}
	return search.ParseAlgorithm(sc.Algorithm)
}

// Validate reports the first problem Grid would fail on. Load runs it after
// decoding.
func (sc *Scenario) Validate() error {
	_, err := sc.Grid()
	return err
}

// Grid builds the grid described by sc with walls and weights applied.
func (sc *Scenario) Grid() (*hexgrid.Grid, error) {
	wide, err := sc.Parity()
	if err != nil {
		return nil, err
	}
	if _, err = sc.Search(); err != nil {
		return nil, err
	}
	g, err := hexgrid.New(sc.Rows, sc.Cols, wide)
	if err != nil {
		return nil, err
	}
	l := g.Layout()

	for _, named := range []struct {
		name string
		p    Point
	}{{"start", sc.Start}, {"target", sc.Target}} {
		if !l.InBounds(named.p.Position()) {
			return nil, fmt.Errorf("%w: %s %s", ErrOutOfBounds, named.name, named.p.Position())
		}
	}

	walls := mapset.New[hexgrid.Position]()
	for _, w := range sc.Walls {
		p := w.Position()
		if walls.Has(p) {
			return nil, fmt.Errorf("%w: wall %s", ErrDuplicateCell, p)
		}
		walls.Put(p)
		if err = g.SetBlocked(p, true); err != nil {
			return nil, fmt.Errorf("%w: wall %s", ErrOutOfBounds, p)
		}
	}

	weighted := mapset.New[hexgrid.Position]()
	for _, w := range sc.Weights {
		p := hexgrid.Position{X: w.X, Y: w.Y}
		if weighted.Has(p) {
			return nil, fmt.Errorf("%w: weight %s", ErrDuplicateCell, p)
		}
		weighted.Put(p)
		if !l.InBounds(p) {
			return nil, fmt.Errorf("%w: weight %s", ErrOutOfBounds, p)
		}
		if err = g.SetWeight(p, w.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Encode writes sc as YAML.
func (sc *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	return enc.Close()
}

// FromGrid captures g, start, target and alg as a Scenario. Walls and
// non-default weights are listed in row-major order; presentation markers
// are not saved.
func FromGrid(g *hexgrid.Grid, start, target hexgrid.Position, alg search.Algorithm) (*Scenario, error) {
	if g == nil {
		return nil, hexgrid.ErrNilGrid
	}
	sc := &Scenario{
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		WideRows:  g.Wide().String(),
		Algorithm: alg.String(),
		Start:     Point{X: start.X, Y: start.Y},
		Target:    Point{X: target.X, Y: target.Y},
	}
	g.Each(func(c hexgrid.Cell) {
		if c.Blocked {
			sc.Walls = append(sc.Walls, Point{X: c.X, Y: c.Y})
		}
		if c.Weight != hexgrid.DefaultWeight {
			sc.Weights = append(sc.Weights, WeightedPoint{X: c.X, Y: c.Y, Weight: c.Weight})
		}
	})
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
