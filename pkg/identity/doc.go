// Package identity provides user accounts and stateless session tokens.
//
// # Accounts
//
// Registry keeps registered users in memory for the process lifetime.
// Passwords are stored as bcrypt hashes and compared on login; the first
// registration of a username wins and is immutable afterwards.
//
// # Tokens
//
// Issuer mints signed bearer tokens of the form
//
//	bks_<base64url(claims JSON)>.<base64url(HMAC-SHA256 signature)>
//
// carrying the username and an expiry. Nothing is stored server side:
// Verify is a pure function of (token, secret, now), so a token is valid
// exactly when its signature checks out against the process-wide secret
// and its expiry has not passed.
package identity
