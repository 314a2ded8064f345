// Package faqstore persists the FAQ catalog as a generated source-text file
// and provides entry-level CRUD over it.
//
// Every operation re-reads the file; nothing is cached between calls. All
// read-mutate-write sequences are serialized by one in-process lock, so the
// manager must be the only writer of its file.
package faqstore

import (
	"crypto/sha256"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	"backend-faq/internal/models"

	"go.uber.org/zap"
)

// DefaultPath is where the service keeps the store unless configured otherwise.
const DefaultPath = "data/faqData.js"

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionReplace Action = "replace"
	ActionReload  Action = "reload"
)

// Change describes a committed modification of the store.
type Change struct {
	Action     Action           `json:"action"`
	CategoryID string           `json:"category,omitempty"`
	FAQID      string           `json:"faq_id,omitempty"`
	FAQ        *models.FAQEntry `json:"faq,omitempty"`
}

type Option func(*Manager)

func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithNotifier registers fn to run after each committed change. It is
// called without the store lock held.
func WithNotifier(fn func(Change)) Option {
	return func(m *Manager) { m.notify = fn }
}

type Manager struct {
	path   string
	log    *zap.Logger
	notify func(Change)

	mu sync.RWMutex
	// known is the digest of the content this manager last wrote or last
	// accepted in Reload. Plain reads never update it.
	known atomic.Pointer[[sha256.Size]byte]
}

func New(path string, opts ...Option) *Manager {
	m := &Manager{path: path, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Path() string { return m.path }

// ReadAll returns the full category list as persisted.
func (m *Manager) ReadAll() ([]models.FAQCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.load()
}

// WriteAll replaces the whole store with categories.
func (m *Manager) WriteAll(categories []models.FAQCategory) error {
	m.mu.Lock()
	err := m.store(categories)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.emit(Change{Action: ActionReplace})
	return nil
}

// AddFAQ appends a new entry to the end of the category. The id is the slug
// when given, otherwise derived from the question.
func (m *Manager) AddFAQ(categoryID string, in models.FAQInput) (models.FAQEntry, error) {
	var created models.FAQEntry
	err := m.mutate(func(cats []models.FAQCategory) (Change, error) {
		i := indexCategory(cats, categoryID)
		if i < 0 {
			return Change{}, &NotFoundError{CategoryID: categoryID}
		}
		created = models.FAQEntry{
			ID:       resolveID(in.Slug, in.Question),
			Question: in.Question,
			Answer:   in.Answer,
		}
		cats[i].FAQs = append(cats[i].FAQs, created)
		return Change{Action: ActionCreate, CategoryID: categoryID, FAQID: created.ID, FAQ: &created}, nil
	})
	return created, err
}

// UpdateFAQ rewrites question and answer of the first entry with faqID, in
// place. The id changes only when a slug is given; it is never re-derived
// from the new question.
func (m *Manager) UpdateFAQ(categoryID, faqID string, in models.FAQInput) (models.FAQEntry, error) {
	var updated models.FAQEntry
	err := m.mutate(func(cats []models.FAQCategory) (Change, error) {
		i, j, err := locate(cats, categoryID, faqID)
		if err != nil {
			return Change{}, err
		}
		entry := &cats[i].FAQs[j]
		entry.Question = in.Question
		entry.Answer = in.Answer
		if in.Slug != "" {
			entry.ID = in.Slug
		}
		updated = *entry
		return Change{Action: ActionUpdate, CategoryID: categoryID, FAQID: updated.ID, FAQ: &updated}, nil
	})
	return updated, err
}

// DeleteFAQ removes the first entry with faqID and returns it.
func (m *Manager) DeleteFAQ(categoryID, faqID string) (models.FAQEntry, error) {
	var removed models.FAQEntry
	err := m.mutate(func(cats []models.FAQCategory) (Change, error) {
		i, j, err := locate(cats, categoryID, faqID)
		if err != nil {
			return Change{}, err
		}
		removed = cats[i].FAQs[j]
		cats[i].FAQs = slices.Delete(cats[i].FAQs, j, j+1)
		return Change{Action: ActionDelete, CategoryID: categoryID, FAQID: removed.ID, FAQ: &removed}, nil
	})
	return removed, err
}

// ListAllFlat returns every entry tagged with its category, in
// category-then-entry order.
func (m *Manager) ListAllFlat() ([]models.FlatFAQ, error) {
	cats, err := m.ReadAll()
	if err != nil {
		return nil, err
	}
	return Flatten(cats), nil
}

func Flatten(cats []models.FAQCategory) []models.FlatFAQ {
	out := []models.FlatFAQ{}
	for _, c := range cats {
		for _, f := range c.FAQs {
			out = append(out, models.FlatFAQ{FAQEntry: f, Category: c.ID, CategoryTitle: c.Title})
		}
	}
	return out
}

// Init writes categories only when the store file does not exist yet.
// It reports whether a file was created.
func (m *Manager) Init(categories []models.FAQCategory) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, &StoreUnreadableError{Path: m.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return false, &StoreWriteError{Path: m.path, Err: err}
	}
	if err := m.store(categories); err != nil {
		return false, err
	}
	m.log.Info("faq store initialised", zap.String("path", m.path), zap.Int("categories", len(categories)))
	return true, nil
}

// Reload re-reads the file and reports whether its content differs from
// what this manager last wrote or reloaded. Used to pick up hand edits.
func (m *Manager) Reload() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return false, &StoreUnreadableError{Path: m.path, Err: err}
	}
	sum := sha256.Sum256(data)
	if prev := m.known.Load(); prev != nil && *prev == sum {
		return false, nil
	}
	if _, err := Decode(data); err != nil {
		return false, &StoreUnreadableError{Path: m.path, Err: err}
	}
	m.known.Store(&sum)
	return true, nil
}

func (m *Manager) mutate(fn func([]models.FAQCategory) (Change, error)) error {
	m.mu.Lock()
	cats, err := m.load()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	change, err := fn(cats)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.store(cats); err != nil {
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	m.emit(change)
	return nil
}

func (m *Manager) emit(c Change) {
	m.log.Info("faq store changed",
		zap.String("action", string(c.Action)),
		zap.String("category", c.CategoryID),
		zap.String("faq_id", c.FAQID))
	if m.notify != nil {
		m.notify(c)
	}
}

// load must be called with mu held.
func (m *Manager) load() ([]models.FAQCategory, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, &StoreUnreadableError{Path: m.path, Err: err}
	}
	cats, err := Decode(data)
	if err != nil {
		return nil, &StoreUnreadableError{Path: m.path, Err: err}
	}
	return cats, nil
}

// store must be called with mu held for writing.
func (m *Manager) store(cats []models.FAQCategory) error {
	data := Encode(cats)
	if err := writeFileAtomic(m.path, data, 0o644); err != nil {
		m.log.Error("faq store write failed", zap.String("path", m.path), zap.Error(err))
		return &StoreWriteError{Path: m.path, Err: err}
	}
	sum := sha256.Sum256(data)
	m.known.Store(&sum)
	return nil
}

func indexCategory(cats []models.FAQCategory, id string) int {
	return slices.IndexFunc(cats, func(c models.FAQCategory) bool { return c.ID == id })
}

func locate(cats []models.FAQCategory, categoryID, faqID string) (int, int, error) {
	i := indexCategory(cats, categoryID)
	if i < 0 {
		return -1, -1, &NotFoundError{CategoryID: categoryID}
	}
	j := slices.IndexFunc(cats[i].FAQs, func(f models.FAQEntry) bool { return f.ID == faqID })
	if j < 0 {
		return -1, -1, &NotFoundError{CategoryID: categoryID, FAQID: faqID}
	}
	return i, j, nil
}
