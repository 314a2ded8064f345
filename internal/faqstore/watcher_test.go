package faqstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"backend-faq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type changeRecorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *changeRecorder) record(c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) count(a Action) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.changes {
		if c.Action == a {
			n++
		}
	}
	return n
}

func TestWatcherReportsExternalEdits(t *testing.T) {
	m := newTestManager(t, models.EmptyCategories())
	_, err := m.ReadAll()
	require.NoError(t, err)

	rec := &changeRecorder{}
	w, err := NewWatcher(m, zaptest.NewLogger(t), rec.record, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// writes through the manager are not external
	_, err = m.AddFAQ("general", models.FAQInput{Question: "own", Answer: "a"})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, rec.count(ActionReload))

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(m.Path()), "other.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, rec.count(ActionReload))

	edited := Encode([]models.FAQCategory{{ID: "general", FAQs: entries("hand")}})
	require.NoError(t, os.WriteFile(m.Path(), edited, 0o644))
	require.Eventually(t, func() bool { return rec.count(ActionReload) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherReportsEditReadDuringDebounce(t *testing.T) {
	m := newTestManager(t, models.EmptyCategories())
	require.NoError(t, m.WriteAll(models.EmptyCategories()))

	rec := &changeRecorder{}
	w, err := NewWatcher(m, zaptest.NewLogger(t), rec.record, 200*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	edited := Encode([]models.FAQCategory{{ID: "general", FAQs: entries("hand")}})
	require.NoError(t, os.WriteFile(m.Path(), edited, 0o644))

	// an API read lands before the debounce fires
	time.Sleep(20 * time.Millisecond)
	cats, err := m.ReadAll()
	require.NoError(t, err)
	require.Len(t, cats, 1)

	require.Eventually(t, func() bool { return rec.count(ActionReload) == 1 }, 2*time.Second, 10*time.Millisecond)
}
