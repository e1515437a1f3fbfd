package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/imulab/alg/uf"
)

var (
	// ErrInvalidTotal indicates a fixture whose point count is not positive.
	ErrInvalidTotal = errors.New("fixture: total must be positive")

	// ErrPairOutOfRange indicates a pair naming a point outside [0, total).
	ErrPairOutOfRange = errors.New("fixture: pair out of range")

	// ErrMalformed indicates input that does not follow the text layout.
	ErrMalformed = errors.New("fixture: malformed input")
)

// Pair is one union request.
type Pair struct {
	P int `json:"p" toml:"p"`
	Q int `json:"q" toml:"q"`
}

// Fixture is a point count plus the pairs to union, in order.
type Fixture struct {
	Total int    `json:"total" toml:"total"`
	Pairs []Pair `json:"data" toml:"data"`
}

// Validate checks Total > 0 and that every pair lies in [0, Total).
// The first offending pair is reported with its position.
func (f *Fixture) Validate() error {
	if f.Total <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotal, f.Total)
	}
	for i, pr := range f.Pairs {
		if pr.P < 0 || pr.P >= f.Total || pr.Q < 0 || pr.Q >= f.Total {
			return fmt.Errorf("%w: pair %d (%d,%d) with total %d", ErrPairOutOfRange, i, pr.P, pr.Q, f.Total)
		}
	}

	return nil
}

// cancelCheckEvery is how many pairs ApplyContext replays between context checks.
const cancelCheckEvery = 4096

// Apply unions every pair into u in order. The first failing pair aborts the
// replay; earlier pairs stay applied.
func (f *Fixture) Apply(u uf.UnionFind) error {
	return f.ApplyContext(context.Background(), u)
}

// ApplyContext is Apply with cancellation: ctx is consulted before the first
// pair and then every cancelCheckEvery pairs. A cancelled replay returns
// ctx.Err() wrapped with the position reached; pairs before it stay applied.
func (f *Fixture) ApplyContext(ctx context.Context, u uf.UnionFind) error {
	for i, pr := range f.Pairs {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("fixture: stopped at pair %d: %w", i, err)
			}
		}
		if err := u.Union(pr.P, pr.Q); err != nil {
			return fmt.Errorf("fixture: pair %d: %w", i, err)
		}
	}

	return nil
}

// Build validates f, constructs variant v over f.Total points and applies
// every pair.
func (f *Fixture) Build(v uf.Variant) (uf.UnionFind, error) {
	return f.BuildContext(context.Background(), v)
}

// BuildContext is Build with a cancellable replay (see ApplyContext).
func (f *Fixture) BuildContext(ctx context.Context, v uf.Variant) (uf.UnionFind, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	u, err := uf.New(v, f.Total)
	if err != nil {
		return nil, err
	}
	if err := f.ApplyContext(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Tiny returns the ten-point, eleven-pair workload from the algs4 tinyUF
// data set. Its final partition is {0,1,2,5,6,7} and {3,4,8,9}.
func Tiny() *Fixture {
	return &Fixture{
		Total: 10,
		Pairs: []Pair{
			{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}, {8, 9},
			{5, 0}, {7, 2}, {6, 1}, {1, 0}, {6, 7},
		},
	}
}
