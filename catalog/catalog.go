// Package catalog is an in-memory movie catalog with per-run liked state.
//
// Liked ids are kept in like order (first liked first), which is the order
// recwindow.Encode consumes them in. Nothing is persisted.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/unkn0wn-root/recwindow"
	"github.com/unkn0wn-root/recwindow/codec"
)

var (
	ErrUnknownMovie = errors.New("catalog: unknown movie")
	ErrDuplicateID  = errors.New("catalog: duplicate movie id")
)

// Movie is one catalog entry. ID 0 is reserved for window padding.
type Movie struct {
	ID    recwindow.ID `json:"id" yaml:"id" validate:"ne=0"`
	Title string       `json:"title" yaml:"title" validate:"required"`
}

var validate = validator.New()

// Load decodes and validates a catalog file.
//
//	movies, err := catalog.Load(b, codec.YAML[[]catalog.Movie]{})
func Load(b []byte, c codec.Codec[[]Movie]) ([]Movie, error) {
	movies, err := c.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := check(movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func check(movies []Movie) error {
	seen := make(map[recwindow.ID]struct{}, len(movies))
	for i := range movies {
		if err := validate.Struct(movies[i]); err != nil {
			return fmt.Errorf("catalog: movie %d: %w", i, err)
		}
		if _, dup := seen[movies[i].ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, movies[i].ID)
		}
		seen[movies[i].ID] = struct{}{}
	}
	return nil
}

// Memory is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	movies []Movie
	byID   map[recwindow.ID]int
	liked  []recwindow.ID
}

var _ recwindow.Catalog = (*Memory)(nil)

func New(movies []Movie) (*Memory, error) {
	m := &Memory{}
	if err := m.Replace(movies); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Memory) Title(id recwindow.ID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.byID[id]
	if !ok {
		return "", false
	}
	return m.movies[i].Title, true
}

// Movies returns a copy in catalog order.
func (m *Memory) Movies() []Movie {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.movies)
}

// Replace swaps the catalog contents. Likes of ids that are still present
// survive in their original order.
func (m *Memory) Replace(movies []Movie) error {
	if err := check(movies); err != nil {
		return err
	}
	byID := make(map[recwindow.ID]int, len(movies))
	for i, mv := range movies {
		byID[mv.ID] = i
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.movies = slices.Clone(movies)
	m.byID = byID
	m.liked = slices.DeleteFunc(m.liked, func(id recwindow.ID) bool {
		_, ok := byID[id]
		return !ok
	})
	return nil
}

// Toggle likes an unliked movie and unlikes a liked one.
func (m *Memory) Toggle(id recwindow.ID) (liked bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownMovie, id)
	}
	if i := slices.Index(m.liked, id); i >= 0 {
		m.liked = slices.Delete(m.liked, i, i+1)
		return false, nil
	}
	m.liked = append(m.liked, id)
	return true, nil
}

// Like is idempotent; an already liked movie keeps its position.
func (m *Memory) Like(id recwindow.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMovie, id)
	}
	if !slices.Contains(m.liked, id) {
		m.liked = append(m.liked, id)
	}
	return nil
}

func (m *Memory) Unlike(id recwindow.ID) {
	m.mu.Lock()
	m.liked = slices.DeleteFunc(m.liked, func(x recwindow.ID) bool { return x == id })
	m.mu.Unlock()
}

func (m *Memory) IsLiked(id recwindow.ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Contains(m.liked, id)
}

// Liked returns liked ids in like order.
func (m *Memory) Liked() []recwindow.ID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.liked)
}
