package model

// Engagement records that one user reacted with the completion emoji on
// another user's submission. At most one edge exists per
// (engager, submission) pair.
type Engagement struct {
	EngagerID    string
	SubmissionID int64
	EngagedAt    int64
}
