package db

import (
	"database/sql"
	"time"
)

// HasEngaged reports whether the engager already has an edge to the given
// submission. Callers deciding whether to insert should use the return
// value of RecordEngagement instead; this read is advisory under
// concurrent delivery.
func (s *Store) HasEngaged(engagerID string, submissionID int64) (bool, error) {
	var id int64
	err := s.db.QueryRow(`
		SELECT id FROM engagements
		WHERE engager_id = ? AND target_submission_id = ?
	`, engagerID, submissionID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RecordEngagement inserts the engagement edge if it does not exist and
// reports whether a new edge was created. The insert and the existence
// check are a single statement backed by the unique index, so two
// concurrent calls for the same pair can never both report true.
func (s *Store) RecordEngagement(engagerID string, submissionID int64) (bool, error) {
	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO engagements (engager_id, target_submission_id, engaged_at)
		VALUES (?, ?, ?)
	`, engagerID, submissionID, time.Now().Unix())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// EngagersFor returns the user IDs that engaged with the given submission,
// first engager first. The order is user-visible in the rendered list.
func (s *Store) EngagersFor(submissionID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT engager_id FROM engagements
		WHERE target_submission_id = ?
		ORDER BY engaged_at ASC, id ASC
	`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engagers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		engagers = append(engagers, id)
	}
	return engagers, rows.Err()
}
