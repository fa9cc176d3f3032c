// Package common contains constants shared by the Momentum client layers.
package common

const (
	// AuthorizationHeader carries the session credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// TokenScheme prefixes the credential in AuthorizationHeader.
	TokenScheme = "Token"

	// RequestIDHeader tags each outbound request so it can be matched in logs.
	RequestIDHeader = "X-Request-Id"

	// DateLayout is the calendar-date format expected by the service.
	DateLayout = "2006-01-02"
)
