package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDestinationImageReturnsLandscapeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "famous tourist attractions in Italy", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		w.Write([]byte(`{"photos":[{"id":1,"src":{"landscape":"https://images.pexels.com/1/landscape.jpg"}}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	url, err := client.SearchDestinationImage(context.Background(), BuildSearchQuery("Italy"))
	require.NoError(t, err)
	assert.Equal(t, "https://images.pexels.com/1/landscape.jpg", url)
}

func TestSearchDestinationImageNoResultsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"photos":[]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	url, err := client.SearchDestinationImage(context.Background(), BuildSearchQuery("Atlantis"))
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSearchDestinationImageBadStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	_, err := client.SearchDestinationImage(context.Background(), "anything")
	assert.Error(t, err)
}

func TestBuildSearchQuery(t *testing.T) {
	assert.Equal(t, "famous tourist attractions in Japan", BuildSearchQuery("Japan"))
}
