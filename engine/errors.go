package engine

import "errors"

var (
	// ErrAlreadyActive is returned by Submit when the user already has an
	// active submission this round.
	ErrAlreadyActive = errors.New("user already has an active submission")

	// ErrNoActiveSubmission is returned when an operation needs an active
	// submission and the user has none.
	ErrNoActiveSubmission = errors.New("no active submission")

	// ErrSelfEngagement is returned when a user tries to engage with their
	// own submission.
	ErrSelfEngagement = errors.New("cannot engage with your own submission")

	// ErrAlreadyEngaged is returned when the engagement edge already
	// exists. It signals an idempotent no-op, not a failure.
	ErrAlreadyEngaged = errors.New("already engaged with this submission")

	// ErrInvalidLink is returned when a link is not an absolute http(s) URL.
	ErrInvalidLink = errors.New("invalid link")
)
