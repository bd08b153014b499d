// Package state owns the archive, the lexicon and the language preference.
// Values are read from storage once and written back after every mutation.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/storage"
)

// Storage keys.
const (
	KeyMemory   = "aetherial_quill_memory"
	KeyTextbook = "aetherial_quill_textbook"
	KeyLanguage = "aetherial_quill_lang"
)

var ErrNotLoaded = errors.New("state: Load has not been called")

type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	loaded   bool
	memories []domain.MemoryItem
	textbook []domain.TextbookItem
	language domain.AppLanguage

	validate *validator.Validate
	newID    func() string
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.With("component", "state")
	}
}

func WithIDGenerator(f func() string) Option {
	return func(s *Store) {
		s.newID = f
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		memories: []domain.MemoryItem{},
		textbook: []domain.TextbookItem{},
		language: domain.LangEnglish,
		validate: validator.New(),
		newID:    uuid.NewString,
		now:      time.Now,
		logger:   slog.Default().With("component", "state"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the three values from storage. It runs once; later calls are
// no-ops. Missing or malformed values fall back to empty defaults without
// error; only storage failures are returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	memories, err := readList[domain.MemoryItem](ctx, s, KeyMemory)
	if err != nil {
		return err
	}
	textbook, err := readList[domain.TextbookItem](ctx, s, KeyTextbook)
	if err != nil {
		return err
	}

	lang := domain.LangEnglish
	raw, err := s.kv.Get(ctx, KeyLanguage)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("loading %s: %w", KeyLanguage, err)
	default:
		if l := domain.AppLanguage(strings.Trim(strings.TrimSpace(string(raw)), `"`)); l.Valid() {
			lang = l
		} else {
			s.logger.Debug("ignoring unknown stored language", "value", string(raw))
		}
	}

	s.memories, s.textbook, s.language = memories, textbook, lang
	s.loaded = true

	s.logger.Debug("state loaded",
		"memories", len(memories),
		"textbook", len(textbook),
		"language", string(lang))
	return nil
}

// readList decodes the JSON array stored under key. Missing or malformed
// values yield an empty, non-nil slice.
func readList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		s.logger.Debug("discarding malformed stored value", "key", key, "error", err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func (s *Store) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Memories returns the archive, most recent first.
func (s *Store) Memories() []domain.MemoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MemoryItem, len(s.memories))
	copy(out, s.memories)
	return out
}

// Textbook returns the lexicon, most recent first.
func (s *Store) Textbook() []domain.TextbookItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TextbookItem, len(s.textbook))
	copy(out, s.textbook)
	return out
}

func (s *Store) Language() domain.AppLanguage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// HasWord reports whether the lexicon already holds word (exact match).
func (s *Store) HasWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasWord(word)
}

func (s *Store) hasWord(word string) bool {
	for _, t := range s.textbook {
		if t.Word == word {
			return true
		}
	}
	return false
}

// AddMemory validates item, assigns an id when it has none and files it at
// the front of the archive.
func (s *Store) AddMemory(ctx context.Context, item domain.MemoryItem) (domain.MemoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := s.validate.Struct(item); err != nil {
		return domain.MemoryItem{}, fmt.Errorf("invalid memory item: %w", err)
	}
	if item.ID == "" {
		item.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return domain.MemoryItem{}, ErrNotLoaded
	}

	s.memories = append([]domain.MemoryItem{item}, s.memories...)
	if err := s.writeJSON(ctx, KeyMemory, s.memories); err != nil {
		return item, err
	}

	s.logger.Debug("memory added", "id", item.ID, "category", string(item.Category))
	return item, nil
}

// DeleteMemory removes the entry with id, keeping the others in order.
// It reports whether anything was removed; an unknown id writes nothing.
func (s *Store) DeleteMemory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return false, ErrNotLoaded
	}

	kept := make([]domain.MemoryItem, 0, len(s.memories))
	for _, m := range s.memories {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.memories) {
		return false, nil
	}

	s.memories = kept
	if err := s.writeJSON(ctx, KeyMemory, s.memories); err != nil {
		return true, err
	}

	s.logger.Debug("memory deleted", "id", id)
	return true, nil
}

// AddToTextbook files item at the front of the lexicon unless its word is
// already present. It reports whether the item was added.
func (s *Store) AddToTextbook(ctx context.Context, item domain.TextbookItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return false, ErrNotLoaded
	}

	if s.hasWord(item.Word) {
		return false, nil
	}
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.AddedAt == 0 {
		item.AddedAt = s.now().UnixMilli()
	}

	s.textbook = append([]domain.TextbookItem{item}, s.textbook...)
	if err := s.writeJSON(ctx, KeyTextbook, s.textbook); err != nil {
		return true, err
	}

	s.logger.Debug("lexicon entry added", "word", item.Word)
	return true, nil
}

// SetLanguage switches the UI and default story language.
func (s *Store) SetLanguage(ctx context.Context, lang domain.AppLanguage) error {
	if !lang.Valid() {
		return fmt.Errorf("unsupported language %q", lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}

	s.language = lang
	if err := s.kv.Put(ctx, KeyLanguage, []byte(lang)); err != nil {
		return fmt.Errorf("saving %s: %w", KeyLanguage, err)
	}
	return nil
}
