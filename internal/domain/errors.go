package domain

import "errors"

var (
	// ErrNotFound is returned when the upstream catalog has no entity for an identifier
	ErrNotFound = errors.New("entity not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUpstreamUnavailable is returned when the catalog API cannot be reached
	ErrUpstreamUnavailable = errors.New("catalog API request failed")

	// ErrUpstreamStatus is returned when the catalog API answers with a non-success status
	ErrUpstreamStatus = errors.New("catalog API returned non-success status")

	// ErrMalformedResponse is returned when the catalog API body cannot be decoded
	ErrMalformedResponse = errors.New("catalog API returned malformed response")
)
