// Package savedconfig keeps the user's named house configurations. The whole
// collection lives under one key as one serialized list, newest first, and every
// write replaces that list.
package savedconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/kvstore"
)

// StorageKey is the key holding the serialized collection.
const StorageKey = "construction_calculator_configs"

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("saved configuration not found")

// Entry is one saved configuration snapshot.
type Entry struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Timestamp int64                  `json:"timestamp"`
	Data      estimate.Configuration `json:"data"`
}

// SavedAt converts the millisecond timestamp to a time.
func (e Entry) SavedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Encode serializes the collection.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode saved configurations: %w", err)
	}
	return data, nil
}

// Decode parses a serialized collection. Empty input decodes to an empty list.
func Decode(data []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode saved configurations: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Store reads and writes the collection through a key/value backend.
type Store struct {
	kv     kvstore.KV
	key    string
	logger *log.Logger

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable stored data.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithKey stores the collection under a different key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock replaces the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the entry id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns a Store over kv.
func New(kv kvstore.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    StorageKey,
		logger: log.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored collection. A missing key yields an empty list, and
// content that cannot be decoded is logged and treated as empty.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the whole collection.
func (s *Store) Save(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, entries)
}

// Add snapshots cfg under name and puts it at the front of the collection. A blank
// name falls back to the configuration's default name.
func (s *Store) Add(ctx context.Context, name string, cfg estimate.Configuration) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return Entry{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = cfg.DefaultName()
	}

	entry := Entry{
		ID:        s.newID(),
		Name:      name,
		Timestamp: s.now().UnixMilli(),
		Data:      cfg.Clone(),
	}

	updated := make([]Entry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)

	if err := s.save(ctx, updated); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Delete removes the entry with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	updated := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	if len(updated) == len(entries) {
		return ErrNotFound
	}

	return s.save(ctx, updated)
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (s *Store) load(ctx context.Context) ([]Entry, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read saved configurations: %w", err)
	}
	if !ok {
		return []Entry{}, nil
	}

	entries, err := Decode(data)
	if err != nil {
		s.logger.Printf("saved configurations under %q are unreadable, starting empty: %v", s.key, err)
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) save(ctx context.Context, entries []Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("write saved configurations: %w", err)
	}
	return nil
}
