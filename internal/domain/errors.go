package domain

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog has no questions to present.
	ErrEmptyCatalog = errors.New("quiz catalog is empty")
	// ErrMalformedQuestion is returned when a catalog entry breaks the question invariants.
	ErrMalformedQuestion = errors.New("malformed question")
	// ErrCatalogNotFound indicates the catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrInvalidTransition is returned when an action is not valid in the current quiz phase.
	ErrInvalidTransition = errors.New("invalid quiz transition")
	// ErrOptionNotFound indicates a selected option is not offered by the current question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrSessionNotFound is returned when a player session has not been opened.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionClosed is returned by a controller whose session was closed or reopened elsewhere.
	ErrSessionClosed = errors.New("quiz session closed")
)
