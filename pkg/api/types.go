package api

import (
	"github.com/platinummonkey/bookstand/pkg/catalog"
	"github.com/platinummonkey/bookstand/pkg/reviews"
)

// BookView is a catalog entry together with its reviews, as served to
// clients. Reviews is never nil so the JSON always carries an array.
type BookView struct {
	ISBN    string           `json:"isbn"`
	Title   string           `json:"title"`
	Author  string           `json:"author"`
	Reviews []reviews.Review `json:"reviews"`
}

// credentialsRequest is the body for registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// reviewRequest is the body for posting or updating a review.
type reviewRequest struct {
	Review string `json:"review"`
}

// loginResponse carries the signed session token back to the client.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) bookView(b catalog.Book) BookView {
	list, err := s.reviews.List(b.ISBN)
	if err != nil || list == nil {
		list = []reviews.Review{}
	}
	return BookView{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Reviews: list,
	}
}

func (s *Server) bookViews(books []catalog.Book) []BookView {
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		views = append(views, s.bookView(b))
	}
	return views
}
