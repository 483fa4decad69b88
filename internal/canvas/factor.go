// Package canvas holds the strategy canvas model: the ordered factor list,
// the mapping between scores and chart pixels, SVG path construction and the
// drag interaction that ties them together.
package canvas

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Score bounds. Every stored score lies in [MinScore, MaxScore].
const (
	MinScore     = 0.0
	MaxScore     = 100.0
	DefaultScore = 50.0
)

var (
	// ErrValidation is returned when a factor name trims to empty.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when an id is not present in the store.
	ErrNotFound = errors.New("factor not found")
)

// Factor is a named competitive dimension with a performance score.
type Factor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Seed describes a factor to load into a store before ids are assigned.
type Seed struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// ClampScore saturates s to [MinScore, MaxScore]. NaN maps to MinScore.
func ClampScore(s float64) float64 {
	if math.IsNaN(s) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, s))
}

// Store owns the ordered list of factors. It is not safe for concurrent
// mutation; callers serialize writes.
type Store struct {
	factors []Factor
	newID   func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the id source. The generator must never repeat.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultScores are the starting scores of price, quality, service and
// marketing.
var defaultScores = [4]float64{30, 70, 50, 80}

// DefaultFactors returns the starting factors for a new session. names holds
// price, quality, service and marketing in the caller's language.
func DefaultFactors(names [4]string) []Seed {
	seeds := make([]Seed, len(names))
	for i, name := range names {
		seeds[i] = Seed{Name: name, Score: defaultScores[i]}
	}
	return seeds
}

// Reset replaces the contents of the store with seeds, in order. Every seed
// gets a fresh id and a clamped score.
func (s *Store) Reset(seeds []Seed) error {
	factors := make([]Factor, 0, len(seeds))
	for i, seed := range seeds {
		name := strings.TrimSpace(seed.Name)
		if name == "" {
			return fmt.Errorf("%w: seed %d has an empty name", ErrValidation, i)
		}
		factors = append(factors, Factor{
			ID:    s.newID(),
			Name:  name,
			Score: ClampScore(seed.Score),
		})
	}
	s.factors = factors
	return nil
}

// Create appends a factor with DefaultScore.
func (s *Store) Create(name string) (Factor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Factor{}, fmt.Errorf("%w: factor name is empty", ErrValidation)
	}
	f := Factor{ID: s.newID(), Name: name, Score: DefaultScore}
	s.factors = append(s.factors, f)
	return f, nil
}

// Rename replaces the name of the factor with the given id, keeping its
// position.
func (s *Store) Rename(id, name string) (Factor, error) {
	i, err := s.index(id)
	if err != nil {
		return Factor{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Factor{}, fmt.Errorf("%w: factor name is empty", ErrValidation)
	}
	s.factors[i].Name = name
	return s.factors[i], nil
}

// Remove deletes the factor with the given id. Later factors shift left.
func (s *Store) Remove(id string) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.factors = append(s.factors[:i], s.factors[i+1:]...)
	return nil
}

// SetScore stores clamp(score, 0, 100) on the factor with the given id.
// Out-of-range input is clamped, not rejected.
func (s *Store) SetScore(id string, score float64) (Factor, error) {
	i, err := s.index(id)
	if err != nil {
		return Factor{}, err
	}
	s.factors[i].Score = ClampScore(score)
	return s.factors[i], nil
}

// Get returns the factor with the given id.
func (s *Store) Get(id string) (Factor, error) {
	i, err := s.index(id)
	if err != nil {
		return Factor{}, err
	}
	return s.factors[i], nil
}

// List returns a snapshot of the factors in insertion order.
func (s *Store) List() []Factor {
	out := make([]Factor, len(s.factors))
	copy(out, s.factors)
	return out
}

// Len returns the number of factors.
func (s *Store) Len() int {
	return len(s.factors)
}

func (s *Store) index(id string) (int, error) {
	for i, f := range s.factors {
		if f.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, id)
}
