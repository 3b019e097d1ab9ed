package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudflare/cloudflare-go/v4/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lite-lake/cloudflare-mcp/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(config.Credentials{APIToken: "test-token"},
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
}

func envelope(result string) string {
	return `{"success":true,"errors":[],"messages":[],"result":` + result + `}`
}

func TestDeleteDNSRecordReturnsUpstreamResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		io.WriteString(w, envelope(`{"id":"rec1"}`))
	})

	resp, err := client.DeleteDNSRecord(context.Background(), "zone1", "rec1")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "rec1", resp.ID)
}

func TestEditDNSRecordOmitsUnsuppliedFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, envelope(`{"id":"rec1","name":"a.example.com","type":"A","content":"192.0.2.2","ttl":300,"proxied":false}`))
	})

	record, err := client.EditDNSRecord(context.Background(), "zone1", "rec1", RecordChange{
		Content: "192.0.2.2",
		Type:    "A",
	})
	require.NoError(t, err)

	assert.Equal(t, "192.0.2.2", body["content"])
	assert.Equal(t, "A", body["type"])
	_, hasTTL := body["ttl"]
	assert.False(t, hasTTL, "edit must not send a ttl the caller did not supply")
	_, hasName := body["name"]
	assert.False(t, hasName)

	assert.Equal(t, "rec1", record.ID)
	assert.Equal(t, 300, record.TTL)
}

func TestCreateDNSRecordDefaultsTTL(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, envelope(`{"id":"rec2","name":"a.example.com","type":"A","content":"192.0.2.1","ttl":1,"proxied":true}`))
	})

	record, err := client.CreateDNSRecord(context.Background(), "zone1", RecordChange{
		Name:    "a.example.com",
		Content: "192.0.2.1",
		Type:    "A",
		Proxied: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "a.example.com", body["name"])
	assert.EqualValues(t, 1, body["ttl"])
	assert.Equal(t, true, body["proxied"])
	assert.Equal(t, "rec2", record.ID)
	assert.True(t, record.Proxied)
}

func ptr[T any](v T) *T { return &v }
