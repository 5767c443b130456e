package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/platinummonkey/bookstand/pkg/httputil"
	"github.com/platinummonkey/bookstand/pkg/middleware"
	"github.com/platinummonkey/bookstand/pkg/reviews"
)

// addReview handles POST /books/isbn/{isbn}/review
func (s *Server) addReview(w http.ResponseWriter, r *http.Request) {
	isbn, err := httputil.ParsePathString(r, "isbn")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	var req reviewRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Review, "review") {
		return
	}

	username := middleware.AuthenticatedUser(r)
	review, err := s.reviews.AddOrUpdate(isbn, username, req.Review)
	if err != nil {
		s.countReviewWrite("add", "error")
		s.writeReviewError(w, err)
		return
	}

	s.countReviewWrite("add", "success")
	s.logger.WithFields(map[string]interface{}{
		"username": username,
		"isbn":     isbn,
	}).Info("review added")
	httputil.WriteSuccessMessage(w,
		fmt.Sprintf("The review for the book with the ISBN %s has been added/updated", isbn), review)
}

// updateReview handles PUT /books/isbn/{isbn}/review/{id}
func (s *Server) updateReview(w http.ResponseWriter, r *http.Request) {
	isbn, id, ok := s.reviewPathVars(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Review, "review") {
		return
	}

	username := middleware.AuthenticatedUser(r)
	review, err := s.reviews.Update(isbn, id, username, req.Review)
	if err != nil {
		s.countReviewWrite("update", "error")
		s.writeReviewError(w, err)
		return
	}

	s.countReviewWrite("update", "success")
	httputil.WriteSuccessMessage(w, "Review updated", review)
}

// deleteReview handles DELETE /books/isbn/{isbn}/review/{id}
func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	isbn, id, ok := s.reviewPathVars(w, r)
	if !ok {
		return
	}

	username := middleware.AuthenticatedUser(r)
	if err := s.reviews.Delete(isbn, id, username); err != nil {
		s.countReviewWrite("delete", "error")
		s.writeReviewError(w, err)
		return
	}

	s.countReviewWrite("delete", "success")
	httputil.WriteSuccessMessage(w, "Review deleted", nil)
}

// deleteUserReviews handles DELETE /books/isbn/{isbn}/review, removing every
// review the caller holds on the book
func (s *Server) deleteUserReviews(w http.ResponseWriter, r *http.Request) {
	isbn, err := httputil.ParsePathString(r, "isbn")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	username := middleware.AuthenticatedUser(r)
	removed, err := s.reviews.DeleteByUser(isbn, username)
	if err != nil {
		s.countReviewWrite("delete_all", "error")
		s.writeReviewError(w, err)
		return
	}

	s.countReviewWrite("delete_all", "success")
	httputil.WriteSuccessMessage(w,
		fmt.Sprintf("Reviews by %s for the book with the ISBN %s deleted", username, isbn),
		map[string]int{"removed": removed})
}

// reviewPathVars extracts and validates the isbn and review id path vars.
// Review ids are uuids; anything else is rejected before the ledger is hit.
func (s *Server) reviewPathVars(w http.ResponseWriter, r *http.Request) (isbn, id string, ok bool) {
	isbn, err := httputil.ParsePathString(r, "isbn")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return "", "", false
	}
	id, err = httputil.ParsePathString(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return "", "", false
	}
	if uuid.Validate(id) != nil {
		httputil.WriteBadRequest(w, "invalid review id")
		return "", "", false
	}
	return isbn, id, true
}

func (s *Server) writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviews.ErrBookNotFound):
		httputil.WriteNotFoundError(w, "Book not found")
	case errors.Is(err, reviews.ErrReviewNotFound):
		httputil.WriteNotFoundError(w, "Review not found")
	case errors.Is(err, reviews.ErrNotOwner):
		httputil.WriteForbidden(w, "Review belongs to another user")
	case errors.Is(err, reviews.ErrCapacityExceeded):
		httputil.WriteBadRequest(w, "Review limit reached for this book")
	default:
		httputil.WriteInternalError(w, err)
	}
}
