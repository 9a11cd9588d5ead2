// Package common contains shared constants and helpers used across
// client components.
package common

const (
	// AuthorizationHeader is the HTTP header that carries the bearer token
	// on outbound requests and realtime connect frames.
	AuthorizationHeader = "Authorization"

	// BearerPrefix prefixes the token value in the Authorization header.
	BearerPrefix = "Bearer "
)
