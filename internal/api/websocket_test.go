package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portside/internal/ops"
)

// dialTestSocket connects a websocket client to the test server and
// waits for the hub to register it.
func dialTestSocket(t *testing.T, server *Server, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	// Registration runs through the hub goroutine
	deadline := time.Now().Add(2 * time.Second)
	for server.wsHub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("websocket client never registered with hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) ops.Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ops.Event
	require.NoError(t, json.Unmarshal(message, &event))
	return event
}

func TestWebSocketReceivesToolEvents(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server)
	defer ts.Close()

	conn := dialTestSocket(t, server, ts)
	defer conn.Close()

	// A container query fans out to the dashboard stream
	resp, err := http.Post(ts.URL+"/api/containers/status", "application/json",
		strings.NewReader(`{"containerNumber": "ABCD1234567"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	event := readEvent(t, conn)
	assert.Equal(t, ops.EventContainerQueried, event.Type)
	assert.Equal(t, ops.ActionStatusQuery, event.Action)
	assert.Equal(t, "ABCD1234567", event.ContainerNumber)
	assert.False(t, event.Timestamp.IsZero())
}

func TestWebSocketEventSequence(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server)
	defer ts.Close()

	conn := dialTestSocket(t, server, ts)
	defer conn.Close()

	// Update then gatepass: each successful action produces one event
	resp, err := http.Post(ts.URL+"/api/containers/update", "application/json",
		strings.NewReader(`{"containerNumber": "ABCD1234567", "newStatus": "AVAILABLE_FOR_DELIVERY"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/gatepass/generate", "application/json",
		strings.NewReader(`{"containerNumber": "ABCD1234567", "haulierCompany": "SPEEDY HAULAGE", "truckNumber": "WXY 1234"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	first := readEvent(t, conn)
	assert.Equal(t, ops.EventContainerUpdated, first.Type)
	assert.Equal(t, "DISCHARGED", first.OldStatus)
	assert.Equal(t, "AVAILABLE_FOR_DELIVERY", first.NewStatus)

	second := readEvent(t, conn)
	assert.Equal(t, ops.EventGatepassGenerated, second.Type)
	require.NotNil(t, second.Gatepass)
	assert.Equal(t, "ABCD1234567", second.Gatepass.ContainerNumber)
}

func TestWebSocketFailedActionsEmitNothing(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server)
	defer ts.Close()

	conn := dialTestSocket(t, server, ts)
	defer conn.Close()

	// Ineligible gatepass: 400, no event
	resp, err := http.Post(ts.URL+"/api/gatepass/generate", "application/json",
		strings.NewReader(`{"containerNumber": "EFGH9876543", "haulierCompany": "SPEEDY HAULAGE", "truckNumber": "WXY 1234"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "no event should arrive for a failed action")
}

func TestWebSocketStats(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server)
	defer ts.Close()

	conn := dialTestSocket(t, server, ts)
	defer conn.Close()

	resp, err := http.Get(ts.URL + "/api/ws/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, float64(1), stats["connected_clients"])
	assert.Equal(t, "operational", stats["status"])
}
