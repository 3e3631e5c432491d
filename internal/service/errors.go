package service

import (
	"errors"
)

// Sentinel errors returned by the services. Handlers map these to HTTP
// status codes with errors.Is; anything else is reported as a generic
// internal error.
var (
	// ErrPublicationNotFound indicates the publication does not exist
	ErrPublicationNotFound = errors.New("publication not found")

	// ErrCommentNotFound indicates the comment does not exist in the publication
	ErrCommentNotFound = errors.New("comment not found")

	// ErrContentRejected indicates the comment content matched the banned-word list
	ErrContentRejected = errors.New("comment rejected for inappropriate language")

	// ErrEmptyContent indicates empty or whitespace-only comment content
	ErrEmptyContent = errors.New("comment content must be a non-empty string")

	// ErrLikeUnderflow indicates an unlike on a comment that has zero likes
	ErrLikeUnderflow = errors.New("likes cannot be reduced below zero")

	// ErrNoPublications indicates the trending query found no publications
	ErrNoPublications = errors.New("no popular publications found")

	// ErrUserExists indicates the username is already registered
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates an unknown username or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)
