// Package jsonstore is the flat-file Repository backend. The whole dataset
// lives in one JSON document that is rewritten after every mutation.
//
// It enforces neither uniqueness nor cascades: order lines survive their
// order and duplicate staff emails are accepted.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

type document struct {
	Locations          []models.Location           `json:"locations"`
	MenuCategories     []models.MenuCategory       `json:"menuCategories"`
	MenuItems          []models.MenuItem           `json:"menuItems"`
	Areas              []models.Area               `json:"areas"`
	Tables             []models.Table              `json:"tables"`
	Orders             []models.Order              `json:"orders"`
	OrderItems         []models.OrderItem          `json:"orderItems"`
	Staff              []models.Staff              `json:"staff"`
	Customers          []models.Customer           `json:"customers"`
	Reservations       []models.Reservation        `json:"reservations"`
	Payments           []models.Payment            `json:"payments"`
	RestaurantSettings []models.RestaurantSettings `json:"restaurantSettings"`
}

// clone copies every collection so a failed write can be discarded.
func (d document) clone() document {
	return document{
		Locations:          orEmpty(slices.Clone(d.Locations)),
		MenuCategories:     orEmpty(slices.Clone(d.MenuCategories)),
		MenuItems:          orEmpty(slices.Clone(d.MenuItems)),
		Areas:              orEmpty(slices.Clone(d.Areas)),
		Tables:             orEmpty(slices.Clone(d.Tables)),
		Orders:             orEmpty(slices.Clone(d.Orders)),
		OrderItems:         orEmpty(slices.Clone(d.OrderItems)),
		Staff:              orEmpty(slices.Clone(d.Staff)),
		Customers:          orEmpty(slices.Clone(d.Customers)),
		Reservations:       orEmpty(slices.Clone(d.Reservations)),
		Payments:           orEmpty(slices.Clone(d.Payments)),
		RestaurantSettings: orEmpty(slices.Clone(d.RestaurantSettings)),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Store guards the in-memory document with a mutex. Nothing coordinates
// writers in other processes.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  document
	now  storage.Clock
}

var _ storage.Repository = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(c storage.Clock) Option {
	return func(s *Store) { s.now = c }
}

// Open loads path, creating an empty document when the file does not exist.
// A file that exists but does not decode is an error.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, now: storage.SystemClock}
	for _, o := range opts {
		o(s)
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.doc = document{}.clone()
		if err := s.persist(s.doc); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", path, err)
	}
	s.doc = doc.clone()
	return s, nil
}

func (s *Store) Close() error { return nil }

func (s *Store) stamp() time.Time {
	return storage.Stamp(s.now())
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID returns "<unix millis>-<9 base36 chars>". It reads the wall clock,
// not the store's Clock, so ids never shift recorded timestamps.
func (s *Store) newID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}

// persist replaces the data file through a temp file and rename, so readers
// never observe a half-written document.
func (s *Store) persist(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".restaurant-data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// mutate applies fn to a copy of the document and keeps the copy only when
// fn succeeds and the file was rewritten.
func (s *Store) mutate(fn func(d *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

type collection[T any] func(d *document) *[]T

func get[T any](s *Store, c collection[T], id string, key func(T) string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range *c(&s.doc) {
		if key(v) == id {
			return v, nil
		}
	}
	var zero T
	return zero, storage.ErrNotFound
}

func insert[T any](s *Store, c collection[T], v T) error {
	return s.mutate(func(d *document) error {
		items := c(d)
		*items = append(*items, v)
		return nil
	})
}

func update[T any](s *Store, c collection[T], id string, key func(T) string, apply func(*T)) (T, error) {
	var out T
	err := s.mutate(func(d *document) error {
		items := *c(d)
		for i := range items {
			if key(items[i]) == id {
				apply(&items[i])
				out = items[i]
				return nil
			}
		}
		return storage.ErrNotFound
	})
	return out, err
}

// selectWhere returns the matching entries sorted by order. keep may be nil.
func selectWhere[T any](s *Store, c collection[T], keep func(T) bool, order func(a, b T) int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, v := range *c(&s.doc) {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	if order != nil {
		slices.SortStableFunc(out, order)
	}
	return out
}
