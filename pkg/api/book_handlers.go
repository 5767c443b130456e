package api

import (
	"errors"
	"net/http"

	"github.com/platinummonkey/bookstand/pkg/catalog"
	"github.com/platinummonkey/bookstand/pkg/httputil"
)

// listBooks handles GET /books
func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	s.countLookup("all", "found")
	httputil.WriteSuccess(w, s.bookViews(s.books.ListAll()))
}

// getBookByISBN handles GET /books/isbn/{isbn}
func (s *Server) getBookByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, err := httputil.ParsePathString(r, "isbn")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			s.countLookup("isbn", "not_found")
			httputil.WriteNotFoundError(w, "Book not found")
			return
		}
		httputil.WriteInternalError(w, err)
		return
	}

	s.countLookup("isbn", "found")
	httputil.WriteSuccess(w, s.bookView(book))
}

// getBooksByAuthor handles GET /books/author/{author}
func (s *Server) getBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	author, err := httputil.ParsePathString(r, "author")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	books := s.books.FindByAuthor(author)
	if len(books) == 0 {
		s.countLookup("author", "not_found")
		httputil.WriteNotFoundError(w, "No books found")
		return
	}

	s.countLookup("author", "found")
	httputil.WriteSuccess(w, s.bookViews(books))
}

// getBooksByTitle handles GET /books/title/{title}
func (s *Server) getBooksByTitle(w http.ResponseWriter, r *http.Request) {
	title, err := httputil.ParsePathString(r, "title")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	books := s.books.FindByTitle(title)
	if len(books) == 0 {
		s.countLookup("title", "not_found")
		httputil.WriteNotFoundError(w, "No books found")
		return
	}

	s.countLookup("title", "found")
	httputil.WriteSuccess(w, s.bookViews(books))
}

// listReviews handles GET /books/isbn/{isbn}/reviews
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	isbn, err := httputil.ParsePathString(r, "isbn")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	list, err := s.reviews.List(isbn)
	if err != nil {
		s.countLookup("reviews", "not_found")
		httputil.WriteNotFoundError(w, "Book not found")
		return
	}

	s.countLookup("reviews", "found")
	httputil.WriteSuccess(w, list)
}
