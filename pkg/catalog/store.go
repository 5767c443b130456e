package catalog

import (
	"errors"
	"strings"
	"sync"
)

// ErrBookNotFound is returned when no book carries the requested ISBN.
var ErrBookNotFound = errors.New("book not found")

// Book is a single catalog entry. The ISBN uniquely identifies it.
type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Store holds the seeded catalog, keyed by ISBN for O(1) lookup while
// preserving seed order for listing.
type Store struct {
	mu     sync.RWMutex
	byISBN map[string]Book
	order  []string
}

// NewStore creates a store seeded with the given books. A duplicate ISBN in
// the seed keeps the first entry and drops the rest.
func NewStore(seed []Book) *Store {
	s := &Store{
		byISBN: make(map[string]Book, len(seed)),
		order:  make([]string, 0, len(seed)),
	}
	for _, b := range seed {
		if _, ok := s.byISBN[b.ISBN]; ok {
			continue
		}
		s.byISBN[b.ISBN] = b
		s.order = append(s.order, b.ISBN)
	}
	return s
}

// ListAll returns every book in seed order.
func (s *Store) ListAll() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]Book, 0, len(s.order))
	for _, isbn := range s.order {
		books = append(books, s.byISBN[isbn])
	}
	return books
}

// FindByISBN returns the book with the exact ISBN or ErrBookNotFound.
func (s *Store) FindByISBN(isbn string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byISBN[isbn]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return b, nil
}

// FindByAuthor returns all books whose author contains the query,
// case-insensitively, in seed order.
func (s *Store) FindByAuthor(author string) []Book {
	return s.match(func(b Book) bool {
		return containsFold(b.Author, author)
	})
}

// FindByTitle returns all books whose title contains the query,
// case-insensitively, in seed order.
func (s *Store) FindByTitle(title string) []Book {
	return s.match(func(b Book) bool {
		return containsFold(b.Title, title)
	})
}

// Exists reports whether a book with the given ISBN is in the catalog.
func (s *Store) Exists(isbn string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byISBN[isbn]
	return ok
}

// Count returns the number of books in the catalog.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byISBN)
}

func (s *Store) match(pred func(Book) bool) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var books []Book
	for _, isbn := range s.order {
		if b := s.byISBN[isbn]; pred(b) {
			books = append(books, b)
		}
	}
	return books
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
