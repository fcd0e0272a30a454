package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostPopularMovies_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/imdb/most-popular-movies", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "test-host", r.Header.Get("X-RapidAPI-Host"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"tt0468569","primaryTitle":"The Dark Knight","averageRating":9.0}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-host")
	movies, err := c.MostPopularMovies(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "tt0468569", movies[0].ID)
	assert.Equal(t, "The Dark Knight", movies[0].PrimaryTitle)
}

func TestMostPopularMovies_WrappedObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"movies":[{"id":"tt1375666","primaryTitle":"Inception"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-host")
	movies, err := c.MostPopularMovies(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].PrimaryTitle)
}

func TestMostPopularMovies_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-host")
	_, err := c.MostPopularMovies(context.Background())

	assert.Error(t, err)
}

func TestAutocomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/imdb/autocomplete", r.URL.Path)
		assert.Equal(t, "dark", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"tt0468569","primaryTitle":"The Dark Knight"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-host")
	movies, err := c.Autocomplete(context.Background(), "dark")

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "tt0468569", movies[0].ID)
}
