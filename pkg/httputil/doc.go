// Package httputil provides HTTP handler utilities for consistent error
// handling, JSON encoding/decoding, and request parsing.
//
// Every error leaving the API boundary goes through the Write* helpers so
// all failures share the {"error": "..."} response shape.
package httputil
