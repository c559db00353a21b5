package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostDecodesEnvelopedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"sec1","name":"Intro"},"meta":{"currentPage":2,"totalPages":4}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	meta, err := client.Post(context.Background(), "/courses/addSection", map[string]string{"sectionName": "Intro"}, &out)
	require.NoError(t, err)
	require.Equal(t, "sec1", out.ID)
	require.Equal(t, "Intro", out.Name)
	require.NotNil(t, meta)
	require.Equal(t, 2, *meta.CurrentPage)
}

func TestPostSurfacesServerMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"section name already taken"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Post(context.Background(), "/courses/addSection", nil, nil)
	require.Error(t, err)

	apiErr := AsAPIError(err)
	require.Equal(t, ErrTypeServer, apiErr.Type)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "section name already taken", apiErr.Message)
}

func TestPostNormalizesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.Post(context.Background(), "/store/getAllBooks", nil, nil)
	require.Error(t, err)
	require.Equal(t, ErrTypeNetwork, AsAPIError(err).Type)
}

func TestPostNormalizesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Post(context.Background(), "/store/getAllBooks", nil, nil)
	require.Error(t, err)
	require.Equal(t, ErrTypeBadResponse, AsAPIError(err).Type)
}

func TestGetPassesQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	var out []struct{}
	_, err := client.Get(context.Background(), "/store/getBookCombos", map[string]string{"page": "3"}, &out)
	require.NoError(t, err)
	require.Equal(t, "3", gotQuery)
}
