package dto

import "errors"

var (
	// ErrConfiguration is returned when a required setting, such as the news API key, is missing.
	ErrConfiguration = errors.New("configuration error")
	// ErrFetch is returned when the news source stays unreachable after the retry budget.
	ErrFetch = errors.New("fetch error")
	// ErrExtraction is returned when raw text cannot be interpreted by a format that requires it.
	ErrExtraction = errors.New("extraction error")
)
