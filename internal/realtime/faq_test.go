package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"backend-faq/internal/faqstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	failWith error
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.messages...)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func startHub(t *testing.T) (*FAQHub, context.CancelFunc) {
	t.Helper()
	hub := NewFAQHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
	return hub, cancel
}

func TestHubBroadcastsChanges(t *testing.T) {
	hub, _ := startHub(t)
	a, b := &fakeConn{}, &fakeConn{}
	require.True(t, hub.Join(a))
	require.True(t, hub.Join(b))

	hub.Publish(faqstore.Change{Action: faqstore.ActionCreate, CategoryID: "general", FAQID: "test-q"})

	require.Eventually(t, func() bool { return len(a.received()) == 1 && len(b.received()) == 1 },
		time.Second, 5*time.Millisecond)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(a.received()[0], &msg))
	assert.Equal(t, "faq_update", msg["type"])
	assert.Equal(t, "create", msg["action"])
	assert.Equal(t, "general", msg["category"])
	assert.Equal(t, "test-q", msg["faq_id"])
	assert.NotEmpty(t, msg["timestamp"])
}

func TestHubDropsFailingClients(t *testing.T) {
	hub, _ := startHub(t)
	bad := &fakeConn{failWith: errors.New("broken pipe")}
	good := &fakeConn{}
	require.True(t, hub.Join(bad))
	require.True(t, hub.Join(good))

	hub.Publish(faqstore.Change{Action: faqstore.ActionDelete})
	require.Eventually(t, bad.isClosed, time.Second, 5*time.Millisecond)

	hub.Publish(faqstore.Change{Action: faqstore.ActionReload})
	require.Eventually(t, func() bool { return len(good.received()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestHubLeaveClosesConn(t *testing.T) {
	hub, _ := startHub(t)
	c := &fakeConn{}
	require.True(t, hub.Join(c))
	hub.Leave(c)
	require.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
}

func TestHubStopClosesClientsAndRejectsJoins(t *testing.T) {
	hub, cancel := startHub(t)
	c := &fakeConn{}
	require.True(t, hub.Join(c))

	cancel()
	require.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	assert.False(t, hub.Join(&fakeConn{}))
	hub.Leave(c)
}
