package model

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a referenced dashboard or post does not
	// exist, or does not belong to the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFormat is returned when an ingestion payload is not a parseable
	// row sequence. Field-level malformations are not errors and degrade to
	// defaults instead.
	ErrInvalidFormat = errors.New("invalid format")
)
