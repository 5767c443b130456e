// Package api exposes the Bookstand HTTP surface: catalog queries,
// user registration and login, and token-guarded review mutations.
// Handlers translate domain errors into HTTP status codes; they never
// panic the process on bad input.
package api
