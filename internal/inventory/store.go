// Package inventory holds the authoritative in-memory stock map and keeps
// its JSON snapshot in step after every mutation.
package inventory

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/idilsaglam/stockpile/internal/model"
	"github.com/idilsaglam/stockpile/internal/store/jsonstore"
)

// Result reports the outcome of a validated operation. OK is false for
// rejections (duplicate or unknown name); those are not errors.
type Result struct {
	OK     bool
	Notice string
	Item   model.Item
}

// Listing is a display-ready view of the whole inventory.
type Listing struct {
	Items []model.Item // sorted by name
	Count int
	Total float64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store owns the inventory map and the snapshot path.
// One process per snapshot; the mutex only serializes callers in-process.
type Store struct {
	mu     sync.RWMutex
	path   string
	items  model.Inventory
	logger *zap.Logger
}

// New creates an empty store for the snapshot at path and loads it.
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		items:  model.Inventory{},
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path is the snapshot location.
func (s *Store) Path() string { return s.path }

// Len is the number of distinct items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// AddItem inserts a new item and saves. A name that already exists is
// rejected without touching memory or disk. A negative quantity is stored
// as zero. NaN and infinite prices are refused with ErrInvalidNumber since
// the snapshot cannot hold them.
func (s *Store) AddItem(name string, price float64, quantity int) (Result, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Result{}, fmt.Errorf("price %v: %w", price, ErrInvalidNumber)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[name]; exists {
		s.logger.Info("add rejected: duplicate", zap.String("name", name))
		return Result{Notice: fmt.Sprintf("%s already exists in inventory.", name)}, nil
	}
	if quantity < 0 {
		s.logger.Info("add quantity clamped", zap.String("name", name), zap.Int("requested", quantity))
		quantity = 0
	}
	it := model.Item{Name: name, Price: price, Quantity: quantity}
	s.items[name] = it
	if err := s.saveLocked(); err != nil {
		return Result{}, err
	}
	s.logger.Debug("item added",
		zap.String("name", name),
		zap.Float64("price", price),
		zap.Int("quantity", quantity),
	)
	return Result{OK: true, Notice: fmt.Sprintf("Added %s to inventory.", name), Item: it}, nil
}

// UpdateItem adds delta to the stored quantity, flooring the result at
// zero, and saves. Over-withdrawal succeeds with quantity 0.
func (s *Store) UpdateItem(name string, delta int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, exists := s.items[name]
	if !exists {
		s.logger.Info("update rejected: not found", zap.String("name", name))
		return Result{Notice: fmt.Sprintf("%s not found in inventory.", name)}, nil
	}
	it.Quantity += delta
	if it.Quantity < 0 {
		it.Quantity = 0
	}
	s.items[name] = it
	if err := s.saveLocked(); err != nil {
		return Result{}, err
	}
	s.logger.Debug("item updated",
		zap.String("name", name),
		zap.Int("delta", delta),
		zap.Int("quantity", it.Quantity),
	)
	return Result{OK: true, Notice: fmt.Sprintf("Updated %s quantity.", name), Item: it}, nil
}

// SearchItem looks up name without side effects.
func (s *Store) SearchItem(name string) Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[name]
	if !ok {
		return Result{Notice: fmt.Sprintf("%s not found in inventory.", name)}
	}
	return Result{OK: true, Notice: "Item found: " + name, Item: it}
}

// View lists every item ordered by name, with count and total value.
func (s *Store) View() Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return Listing{Items: items, Count: len(items), Total: s.totalLocked()}
}

// TotalValue is the sum of price*quantity over all items.
func (s *Store) TotalValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalLocked()
}

func (s *Store) totalLocked() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Value()
	}
	return total
}

// Snapshot returns a copy of the current map.
func (s *Store) Snapshot() model.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Clone()
}

// Save rewrites the snapshot from memory.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if err := jsonstore.Save(s.path, s.items); err != nil {
		s.logger.Error("snapshot save failed", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("save: %w", err)
	}
	s.logger.Debug("snapshot saved", zap.String("path", s.path), zap.Int("items", len(s.items)))
	return nil
}

// Load replaces memory with the snapshot on disk, or with an empty map when
// there is none. On error the current map is kept.
func (s *Store) Load() error {
	inv, err := jsonstore.Load(s.path)
	if err != nil {
		s.logger.Error("snapshot load failed", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.items = inv
	s.mu.Unlock()
	s.logger.Debug("snapshot loaded", zap.String("path", s.path), zap.Int("items", len(inv)))
	return nil
}
