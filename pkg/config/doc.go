// Package config loads Bookstand configuration from environment variables.
//
// All variables are prefixed BOOKSTAND_. The token signing secret is the
// only required setting; everything else has a sensible default. See
// LoadConfig for the full list.
package config
