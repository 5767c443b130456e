package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/platinummonkey/bookstand/pkg/httputil"
	"github.com/platinummonkey/bookstand/pkg/identity"
)

// register handles POST /register
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		s.countAuthFailure("invalid_request")
		return
	}
	if !httputil.RequireNonEmpty(w, req.Username, "username") {
		s.countAuthFailure("invalid_request")
		return
	}
	if !httputil.RequireNonEmpty(w, req.Password, "password") {
		s.countAuthFailure("invalid_request")
		return
	}

	if err := s.users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, identity.ErrUserExists) {
			s.countAuthFailure("duplicate_user")
			httputil.WriteBadRequest(w, "User already exists")
			return
		}
		s.logger.FromContext(r.Context()).WithError(err).Error("registration failed")
		httputil.WriteInternalError(w, errors.New("failed to register user"))
		return
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Set(float64(s.users.Count()))
	}
	s.logger.WithField("username", req.Username).Info("user registered")
	httputil.WriteSuccessMessage(w, "User successfully registered. Now you can login", nil)
}

// login handles POST /login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		s.countAuthFailure("invalid_request")
		return
	}

	if err := s.users.Authenticate(req.Username, req.Password); err != nil {
		s.countAuthFailure("bad_credentials")
		httputil.WriteUnauthorized(w, "Invalid credentials")
		return
	}

	token, err := s.issuer.Issue(req.Username, time.Now())
	if err != nil {
		s.logger.FromContext(r.Context()).WithError(err).Error("token issuance failed")
		httputil.WriteInternalError(w, errors.New("failed to issue token"))
		return
	}

	if s.metrics != nil {
		s.metrics.LoginsTotal.Inc()
	}
	s.logger.WithField("username", req.Username).Info("user logged in")
	httputil.WriteSuccess(w, loginResponse{
		Message: "User successfully logged in",
		Token:   token,
	})
}
