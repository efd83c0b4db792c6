package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/ws"
)

type wsMessage struct {
	Type string            `json:"type"`
	Data provider.Snapshot `json:"data"`
}

// releaseStore отвечает после закрытия release.
type releaseStore struct {
	release chan struct{}
	doc     *models.Portfolio
}

func (s releaseStore) Fetch(ctx context.Context) (*models.Portfolio, error) {
	select {
	case <-s.release:
		return s.doc, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func dialWS(t *testing.T, p *provider.Provider, hub *ws.Hub) *websocket.Conn {
	t.Helper()
	r := newTestEngine(t, p)
	r.GET("/api/ws", NewWSHandler(hub, nil).Handle)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readWS(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg wsMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func startTestHub(t *testing.T) *ws.Hub {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := ws.NewHub()
	go hub.Run(ctx)
	return hub
}

func TestWSHandler_SendsSnapshotOnConnect(t *testing.T) {
	conn := dialWS(t, readyProvider(t), startTestHub(t))

	msg := readWS(t, conn)
	assert.Equal(t, ws.EventPortfolioState, msg.Type)
	assert.False(t, msg.Data.Loading)
	require.NotNil(t, msg.Data.Data)
	assert.Equal(t, "Jane Doe", msg.Data.Data.AuthorName())
}

func TestWSHandler_PushesResolution(t *testing.T) {
	hub := startTestHub(t)
	store := releaseStore{release: make(chan struct{}), doc: &models.Portfolio{Author: &models.Author{Name: "Jane Doe"}}}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	p := provider.New(store)
	p.OnResolve(func(provider.State) {
		_ = hub.Broadcast(ws.EventPortfolioState, p.Snapshot())
	})
	p.Init(ctx)

	conn := dialWS(t, p, hub)
	first := readWS(t, conn)
	assert.True(t, first.Data.Loading)

	close(store.release)

	var last wsMessage
	for last.Data.Loading || last.Type == "" {
		last = readWS(t, conn)
	}
	assert.False(t, last.Data.Loading)
	require.NotNil(t, last.Data.Data)
	assert.Equal(t, "Jane Doe", last.Data.Data.AuthorName())
}
