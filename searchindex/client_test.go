package searchindex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/docpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append(opts, WithHTTPClient(server.Client()))
	client, err := NewClient(server.URL, "test-key", "test-index", opts...)
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "key", "index")
	assert.ErrorIs(t, err, ErrEndpointRequired)

	_, err = NewClient("https://svc.search.windows.net", "", "index")
	assert.ErrorIs(t, err, ErrKeyRequired)

	_, err = NewClient("https://svc.search.windows.net", "key", "")
	assert.ErrorIs(t, err, ErrIndexNameRequired)
}

func TestResolveAPIVersionProbesInOrder(t *testing.T) {
	var probed []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := r.URL.Query().Get("api-version")
		probed = append(probed, version)
		if version == "2023-11-01" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	require.NoError(t, client.ResolveAPIVersion(context.Background()))

	assert.Equal(t, []string{"2024-10-01-Preview", "2024-05-01-Preview", "2023-11-01"}, probed)
	assert.Equal(t, "2023-11-01", client.apiVersion)
}

func TestResolveAPIVersionConfiguredOverrideSkipsProbing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when API version is configured")
	}), WithAPIVersion("2025-01-01"))

	require.NoError(t, client.ResolveAPIVersion(context.Background()))
	assert.Equal(t, "2025-01-01", client.apiVersion)
}

func TestResolveAPIVersionAuthFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			err := client.ResolveAPIVersion(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveAPIVersionNoneSupported(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	err := client.ResolveAPIVersion(context.Background())
	assert.ErrorIs(t, err, ErrNoSupportedAPIVersion)
}

func TestEnsureIndex(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotKey    string
		gotBody   map[string]any
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusCreated)
	}), WithAPIVersion("2023-11-01"))

	require.NoError(t, client.EnsureIndex(context.Background(), 1536))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/indexes('test-index')", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-index", gotBody["name"])

	fields, ok := gotBody["fields"].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 6)

	embedding := fields[4].(map[string]any)
	assert.Equal(t, "embedding", embedding["name"])
	assert.Equal(t, "Collection(Edm.Single)", embedding["type"])
	assert.Equal(t, float64(1536), embedding["dimensions"])
	assert.Equal(t, "vector-profile", embedding["vectorSearchProfile"])
}

func TestEnsureIndexRejectsBadDimension(t *testing.T) {
	client := newTestClient(t, http.NewServeMux(), WithAPIVersion("2023-11-01"))

	err := client.EnsureIndex(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestEnsureIndexRequiresResolvedVersion(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	err := client.EnsureIndex(context.Background(), 1536)
	assert.ErrorIs(t, err, ErrAPIVersionUnresolved)
}

func TestEnsureIndexSurfacesServiceError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"bad schema"}`)
	}), WithAPIVersion("2023-11-01"))

	err := client.EnsureIndex(context.Background(), 1536)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "bad schema")
}

func makeRecords(n int) []core.IndexRecord {
	records := make([]core.IndexRecord, n)
	for i := range records {
		records[i] = core.NewIndexRecord(
			core.TextChunk{DocumentID: "doc", Index: i, Content: "chunk"},
			[]float32{0.1, 0.2},
			"doc.pdf",
		)
	}
	return records
}

func TestUploadBatches(t *testing.T) {
	var batchSizes []int
	var actions []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/indexes('test-index')/docs/index", r.URL.Path)

		var payload struct {
			Value []map[string]any `json:"value"`
		}
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))

		batchSizes = append(batchSizes, len(payload.Value))
		for _, v := range payload.Value {
			actions = append(actions, v["@search.action"].(string))
		}
		w.WriteHeader(http.StatusOK)
	}), WithAPIVersion("2023-11-01"))

	// 70 records: 32 + 32 + 6.
	require.NoError(t, client.Upload(context.Background(), makeRecords(70)))

	assert.Equal(t, []int{32, 32, 6}, batchSizes)
	for _, action := range actions {
		assert.Equal(t, "upload", action)
	}
}

func TestUploadEmptyIsNoop(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty record set")
	}), WithAPIVersion("2023-11-01"))

	require.NoError(t, client.Upload(context.Background(), nil))
}

func TestUploadSurfacesServiceError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, "quota exceeded")
	}), WithAPIVersion("2023-11-01"))

	err := client.Upload(context.Background(), makeRecords(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestUploadRecordFieldNames(t *testing.T) {
	var record map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Value []map[string]any `json:"value"`
		}
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload.Value, 1)
		record = payload.Value[0]
		w.WriteHeader(http.StatusOK)
	}), WithAPIVersion("2023-11-01"))

	require.NoError(t, client.Upload(context.Background(), makeRecords(1)))

	for _, field := range []string{"id", "document_id", "chunk_id", "content", "embedding", "source"} {
		assert.Contains(t, record, field)
	}
	assert.Equal(t, "doc-0", record["id"])
	assert.Equal(t, "0", record["chunk_id"])
}
