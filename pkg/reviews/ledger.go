package reviews

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Policy controls how many reviews one user may hold on one book.
type Policy string

const (
	// PolicyUpsertOne allows at most one review per user per book;
	// submitting again overwrites the existing one.
	PolicyUpsertOne Policy = "upsert"
	// PolicyCappedAppend allows up to Cap reviews per user per book.
	PolicyCappedAppend Policy = "capped"
	// PolicyUnlimited places no limit on reviews per user per book.
	PolicyUnlimited Policy = "unlimited"
)

// DefaultCap is the per-user per-book review limit under PolicyCappedAppend
// when none is configured.
const DefaultCap = 3

// ParsePolicy parses a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyUpsertOne, PolicyCappedAppend, PolicyUnlimited:
		return Policy(s), nil
	}
	return "", fmt.Errorf("invalid review policy: %q (must be upsert, capped, or unlimited)", s)
}

var (
	// ErrBookNotFound is returned when the target ISBN is not in the catalog.
	ErrBookNotFound = errors.New("book not found")
	// ErrReviewNotFound is returned when no review carries the given id.
	ErrReviewNotFound = errors.New("review not found")
	// ErrNotOwner is returned when a caller mutates another user's review.
	ErrNotOwner = errors.New("review belongs to another user")
	// ErrCapacityExceeded is returned when the per-user review cap is reached.
	ErrCapacityExceeded = errors.New("review limit reached")
)

// Review is a single user review on a book.
type Review struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookChecker reports whether an ISBN exists in the catalog.
type BookChecker interface {
	Exists(isbn string) bool
}

// Ledger holds all reviews, grouped per book and guarded by one mutex.
type Ledger struct {
	mu     sync.Mutex
	books  BookChecker
	policy Policy
	cap    int
	byISBN map[string][]Review
	now    func() time.Time
}

// NewLedger creates a review ledger over the given catalog. cap only
// applies under PolicyCappedAppend; a non-positive value falls back to
// DefaultCap.
func NewLedger(books BookChecker, policy Policy, cap int) *Ledger {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Ledger{
		books:  books,
		policy: policy,
		cap:    cap,
		byISBN: make(map[string][]Review),
		now:    time.Now,
	}
}

// AddOrUpdate submits a review by user on the book with the given ISBN.
// Under PolicyUpsertOne an existing review by the same user is overwritten;
// under PolicyCappedAppend the cap is enforced before appending.
func (l *Ledger) AddOrUpdate(isbn, username, text string) (Review, error) {
	if !l.books.Exists(isbn) {
		return Review{}, ErrBookNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	list := l.byISBN[isbn]

	switch l.policy {
	case PolicyUpsertOne:
		for i := range list {
			if list[i].Username == username {
				list[i].Text = text
				list[i].UpdatedAt = now
				return list[i], nil
			}
		}
	case PolicyCappedAppend:
		owned := 0
		for i := range list {
			if list[i].Username == username {
				owned++
			}
		}
		if owned >= l.cap {
			return Review{}, ErrCapacityExceeded
		}
	}

	r := Review{
		ID:        uuid.NewString(),
		Username:  username,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.byISBN[isbn] = append(list, r)
	return r, nil
}

// List returns the reviews on a book in submission order. The slice is
// never nil for an existing book.
func (l *Ledger) List(isbn string) ([]Review, error) {
	if !l.books.Exists(isbn) {
		return nil, ErrBookNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byISBN[isbn]
	out := make([]Review, len(list))
	copy(out, list)
	return out, nil
}

// Update replaces the text of the review with the given id. Only the
// review's author may update it.
func (l *Ledger) Update(isbn, id, username, text string) (Review, error) {
	if !l.books.Exists(isbn) {
		return Review{}, ErrBookNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byISBN[isbn]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Username != username {
			return Review{}, ErrNotOwner
		}
		list[i].Text = text
		list[i].UpdatedAt = l.now()
		return list[i], nil
	}
	return Review{}, ErrReviewNotFound
}

// Delete removes the review with the given id. Only the review's author
// may delete it.
func (l *Ledger) Delete(isbn, id, username string) error {
	if !l.books.Exists(isbn) {
		return ErrBookNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byISBN[isbn]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Username != username {
			return ErrNotOwner
		}
		l.byISBN[isbn] = append(list[:i], list[i+1:]...)
		return nil
	}
	return ErrReviewNotFound
}

// DeleteByUser removes every review the user holds on the book and
// returns how many were removed.
func (l *Ledger) DeleteByUser(isbn, username string) (int, error) {
	if !l.books.Exists(isbn) {
		return 0, ErrBookNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byISBN[isbn]
	kept := list[:0]
	removed := 0
	for _, r := range list {
		if r.Username == username {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	l.byISBN[isbn] = kept
	return removed, nil
}

// Count returns the total number of reviews across all books.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, list := range l.byISBN {
		n += len(list)
	}
	return n
}
