package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/bookstand/pkg/reviews"
)

func TestListBooks(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, http.MethodGet, "/books", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var views []BookView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	assert.Len(t, views, 10)

	for _, v := range views {
		assert.NotEmpty(t, v.ISBN)
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.Author)
		assert.NotNil(t, v.Reviews, "reviews must serialize as an array, not null")
	}
}

func TestGetBookByISBN(t *testing.T) {
	srv := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/isbn/9781491952023", "", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var view BookView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
		assert.Equal(t, "9781491952023", view.ISBN)
		assert.Equal(t, "David Flanagan", view.Author)
		assert.Empty(t, view.Reviews)
	})

	t.Run("not found", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/isbn/0000000000000", "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Book not found")
	})
}

func TestGetBooksByAuthor(t *testing.T) {
	srv := newTestServer(t)

	t.Run("case-insensitive substring", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/author/david", "", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var views []BookView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
		require.Len(t, views, 2)
		for _, v := range views {
			assert.Contains(t, v.Author, "David")
		}
	})

	t.Run("no match", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/author/tolstoy", "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "No books found")
	})
}

func TestGetBooksByTitle(t *testing.T) {
	srv := newTestServer(t)

	t.Run("substring match", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/title/javascript", "", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var views []BookView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
		assert.NotEmpty(t, views)
	})

	t.Run("no match", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/title/war-and-peace", "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "No books found")
	})
}

func TestListReviewsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("empty for known book", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/isbn/9781491952023/reviews", "", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var list []reviews.Review
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		assert.Empty(t, list)
		assert.NotEqual(t, "null", rr.Body.String())
	})

	t.Run("unknown book", func(t *testing.T) {
		rr := doRequest(t, srv, http.MethodGet, "/books/isbn/0000000000000/reviews", "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Book not found")
	})
}
