package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portside/internal/config"
	"portside/internal/ops"
	"portside/internal/storage/memstore"
	"portside/internal/storage/seed"
)

// newTestServer builds a server over a seeded in-memory store.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8001,
		},
		Storage: config.StorageConfig{
			Backend: config.BackendMemory,
		},
		Security: config.SecurityConfig{
			AllowedOrigins: []string{"*"},
		},
	}

	store := memstore.New()
	for _, c := range seed.Containers() {
		store.PutContainer(c)
	}
	for _, v := range seed.Vessels() {
		store.PutVessel(v)
	}

	return New(cfg, ops.Stores{
		Containers: store,
		Vessels:    store,
		Gatepasses: store,
		SSRs:       store,
	})
}

// doJSON posts a JSON body and returns the recorded response.
func doJSON(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the success payload shape for decoding in tests.
type envelope struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data"`
	Message      string          `json:"message"`
	SystemSource string          `json:"systemSource"`
}

// errEnvelope mirrors the {"detail": {...}} failure shape.
type errEnvelope struct {
	Detail struct {
		Success          bool     `json:"success"`
		Message          string   `json:"message"`
		SystemSource     string   `json:"systemSource"`
		ValidationErrors []string `json:"validationErrors"`
	} `json:"detail"`
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/api/health"} {
		rec := doJSON(t, server, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["timestamp"])
	}
}

func TestContainerStatus_Found(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/containers/status",
		`{"containerNumber": "ABCD1234567"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ETP/OPUS", resp.SystemSource)

	var container map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &container))
	assert.Equal(t, "DISCHARGED", container["status"])
	assert.Equal(t, true, container["availableForPickup"])
	assert.Equal(t, []interface{}{}, container["ssrHistory"])
}

func TestContainerStatus_NotFound(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/containers/status",
		`{"containerNumber": "ZZZZ0000000"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Detail.Success)
	assert.Equal(t, "ETP/OPUS", resp.Detail.SystemSource)
	assert.Contains(t, resp.Detail.Message, "ZZZZ0000000")
}

func TestContainerStatus_MissingField(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/containers/status", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Detail.Success)
	assert.Contains(t, resp.Detail.Message, "ContainerNumber")
}

func TestContainerUpdate(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/containers/update",
		`{"containerNumber": "EFGH9876543", "newStatus": "DISCHARGED", "location": "Block B-12"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "OPUS/ETP", resp.SystemSource)
	assert.Contains(t, resp.Message, "from ARRIVED to DISCHARGED")

	var container map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &container))
	assert.Equal(t, "DISCHARGED", container["status"])
	assert.Equal(t, "Block B-12", container["location"])
	assert.Equal(t, true, container["availableForPickup"])
}

func TestContainerUpdate_GatedOut(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/containers/update",
		`{"containerNumber": "ABCD1234567", "newStatus": "GATED_OUT"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var container map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &container))
	assert.Equal(t, "GATED_OUT", container["status"])
	assert.Equal(t, false, container["availableForPickup"])
	assert.NotEmpty(t, container["gateOutTime"])
}

func TestGatepassGenerate_Eligible(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/gatepass/generate",
		`{"containerNumber": "ABCD1234567", "haulierCompany": "SPEEDY HAULAGE", "truckNumber": "WXY 1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ETP", resp.SystemSource)

	var gatepass map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &gatepass))
	id, _ := gatepass["id"].(string)
	assert.True(t, strings.HasPrefix(id, "GP"))
	assert.Equal(t, "ACTIVE", gatepass["status"])
	assert.Equal(t, "AISHA_AI_AGENT", gatepass["generatedBy"])
}

func TestGatepassGenerate_Ineligible(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/gatepass/generate",
		`{"containerNumber": "EFGH9876543", "haulierCompany": "SPEEDY HAULAGE", "truckNumber": "WXY 1234"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Detail.Success)
	assert.Equal(t, "ETP", resp.Detail.SystemSource)
	assert.Contains(t, resp.Detail.Message, "Cannot generate eGatepass")
	assert.Len(t, resp.Detail.ValidationErrors, 3)
}

func TestVesselSchedule(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/vessels/schedule",
		`{"vesselName": "maya"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "CBAS", resp.SystemSource)

	var vessel map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &vessel))
	assert.Equal(t, "MSC MAYA", vessel["vesselName"])
}

func TestVesselSchedule_VoyageOnly(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/vessels/schedule",
		`{"voyageNumber": "may001e"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var vessel map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &vessel))
	assert.Equal(t, "MAY001E", vessel["voyageNumber"])
}

func TestVesselSchedule_BothMissing(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/vessels/schedule", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail.Message, "VesselName")
}

func TestVesselSchedule_NotFound(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/vessels/schedule",
		`{"vesselName": "FLYING DUTCHMAN"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CBAS", resp.Detail.SystemSource)
}

func TestSSRSubmit(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/ssr/submit",
		`{"containerNumber": "MSKU7654321", "ssrType": "INSPECTION", "requestDetails": "Customs inspection for held cargo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "24-48 hours")

	var ssr map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &ssr))
	id, _ := ssr["id"].(string)
	assert.True(t, strings.HasPrefix(id, "SSR"))
	assert.Equal(t, "SUBMITTED", ssr["status"])
}

func TestDashboard(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var data struct {
		Containers  []json.RawMessage `json:"containers"`
		Vessels     []json.RawMessage `json:"vessels"`
		Gatepasses  []json.RawMessage `json:"gatepasses"`
		SSRRequests []json.RawMessage `json:"ssrRequests"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Containers, 3)
	assert.Len(t, data.Vessels, 2)
	assert.Empty(t, data.Gatepasses)
	assert.Empty(t, data.SSRRequests)
}

func TestContentTypeValidation(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/containers/status",
		strings.NewReader(`{"containerNumber": "ABCD1234567"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail.Message, "Content-Type")
}

func TestAcceptHeaderValidation(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/health", "")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
