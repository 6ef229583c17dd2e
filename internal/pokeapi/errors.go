package pokeapi

import "errors"

var (
	// ErrNotFound means the requested name or id does not exist upstream.
	ErrNotFound = errors.New("pokeapi: not found")
	// ErrUnavailable covers network failures, timeouts, 429s and 5xx
	// responses from the upstream API.
	ErrUnavailable = errors.New("pokeapi: upstream unavailable")
)
