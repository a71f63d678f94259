package engine

import (
	"sort"

	"github.com/enryu8191/Creator-Bot/db"
	"github.com/enryu8191/Creator-Bot/model"
)

// Engine implements the engagement rules on top of the Store: one active
// submission per user, one engagement edge per (engager, submission) pair,
// one point per validated engagement. It holds no state of its own, so
// every entry point is safe to invoke concurrently.
type Engine struct {
	store *db.Store
}

// New creates an Engine backed by the given store.
func New(store *db.Store) *Engine {
	return &Engine{store: store}
}

// Status describes a user's current round from the owner's side: how many
// of the other active users have engaged with their submission, and who
// has not yet.
type Status struct {
	Link           string
	EngagedCount   int
	RequiredCount  int
	PendingUserIDs []string
}

// Submit records a new submission for the user. The caller is expected to
// have rejected duplicate submissions already; the ErrAlreadyActive check
// here defends the invariant, it is not the primary enforcement point.
func (e *Engine) Submit(userID, displayName, link, messageID, channelID string) (*model.Submission, error) {
	existing, err := e.store.GetActiveSubmission(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyActive
	}

	if err := e.store.UpsertUser(userID, displayName); err != nil {
		return nil, err
	}

	id, err := e.store.CreateSubmission(userID, link, messageID, channelID)
	if err != nil {
		return nil, err
	}

	return &model.Submission{
		ID:        id,
		UserID:    userID,
		Link:      link,
		MessageID: messageID,
		ChannelID: channelID,
	}, nil
}

// EditLink replaces the link on the user's active submission in place and
// returns the updated submission along with the previous link for the
// change notification. Engagements on the submission are unaffected.
func (e *Engine) EditLink(userID, newLink string) (*model.Submission, string, error) {
	if err := ValidateLink(newLink); err != nil {
		return nil, "", err
	}

	sub, err := e.store.GetActiveSubmission(userID)
	if err != nil {
		return nil, "", err
	}
	if sub == nil {
		return nil, "", ErrNoActiveSubmission
	}

	oldLink := sub.Link
	if err := e.store.UpdateSubmissionLink(sub.ID, newLink); err != nil {
		return nil, "", err
	}
	sub.Link = newLink

	return sub, oldLink, nil
}

// RecordEngagement registers that engagerID engaged with the target
// owner's active submission and awards the engager one point. The
// duplicate check is the store's atomic insert, so concurrent duplicate
// deliveries award the point exactly once; the loser gets
// ErrAlreadyEngaged.
func (e *Engine) RecordEngagement(engagerID, targetOwnerID string) error {
	if engagerID == targetOwnerID {
		return ErrSelfEngagement
	}

	sub, err := e.store.GetActiveSubmission(targetOwnerID)
	if err != nil {
		return err
	}
	if sub == nil {
		// Reset or deletion raced the reaction; the caller drops it.
		return ErrNoActiveSubmission
	}

	inserted, err := e.store.RecordEngagement(engagerID, sub.ID)
	if err != nil {
		return err
	}
	if !inserted {
		return ErrAlreadyEngaged
	}

	return e.store.IncrementPoints(engagerID, 1)
}

// StatusFor reports the user's engagement status. Pending is computed as
// {other active users} minus {engagers of the user's submission} — who
// still owes the caller a reaction, not whom the caller still owes.
func (e *Engine) StatusFor(userID string) (*Status, error) {
	sub, err := e.store.GetActiveSubmission(userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoActiveSubmission
	}

	latest, err := e.store.LatestSubmissionByUser()
	if err != nil {
		return nil, err
	}

	engagers, err := e.store.EngagersFor(sub.ID)
	if err != nil {
		return nil, err
	}
	engaged := make(map[string]struct{}, len(engagers))
	for _, id := range engagers {
		engaged[id] = struct{}{}
	}

	status := &Status{Link: sub.Link}
	var pending []string
	for otherID := range latest {
		if otherID == userID {
			continue
		}
		status.RequiredCount++
		if _, ok := engaged[otherID]; ok {
			status.EngagedCount++
		} else {
			pending = append(pending, otherID)
		}
	}
	sort.Strings(pending)
	status.PendingUserIDs = pending

	return status, nil
}

// Participant identifies an active user in reports.
type Participant struct {
	UserID      string
	DisplayName string
}

// NonEngagedUsers returns every active user who has at least one other
// active user's submission they have not engaged with. The pairwise check
// is O(U^2), which is fine at community scale (tens of users).
func (e *Engine) NonEngagedUsers() ([]Participant, error) {
	latest, err := e.store.LatestSubmissionByUser()
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(latest))
	for id := range latest {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	var nonEngaged []Participant
	for _, userID := range userIDs {
		missing := false
		for _, otherID := range userIDs {
			if otherID == userID {
				continue
			}
			engaged, err := e.store.HasEngaged(userID, latest[otherID])
			if err != nil {
				return nil, err
			}
			if !engaged {
				missing = true
				break
			}
		}
		if !missing {
			continue
		}

		name := userID
		if user, err := e.store.GetUser(userID); err == nil && user != nil {
			name = user.DisplayName
		}
		nonEngaged = append(nonEngaged, Participant{UserID: userID, DisplayName: name})
	}

	return nonEngaged, nil
}

// ActiveSubmission returns the user's active submission, or nil, nil when
// they have none this round.
func (e *Engine) ActiveSubmission(userID string) (*model.Submission, error) {
	return e.store.GetActiveSubmission(userID)
}

// SubmissionByMessage resolves the submission rendered as the given
// message. Returns nil, nil when the message is not a tracked submission.
func (e *Engine) SubmissionByMessage(channelID, messageID string) (*model.Submission, error) {
	return e.store.GetSubmissionByMessage(channelID, messageID)
}

// Leaderboard returns a point-in-time snapshot of the top users by points.
func (e *Engine) Leaderboard(limit int) ([]model.LeaderboardEntry, error) {
	return e.store.Leaderboard(limit)
}

// ResetAll clears all submissions and engagements to start a new round.
// Point totals survive the reset; only round state is deleted.
func (e *Engine) ResetAll() error {
	return e.store.ResetAll()
}
