package db

import (
	"database/sql"
	"time"

	"github.com/enryu8191/Creator-Bot/model"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSubmission scans a row into a Submission struct.
func scanSubmission(scanner rowScanner) (*model.Submission, error) {
	var sub model.Submission
	err := scanner.Scan(&sub.ID, &sub.UserID, &sub.Link, &sub.MessageID, &sub.ChannelID, &sub.CreatedAt, &sub.Completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No submission found is not an error
		}
		return nil, err
	}
	return &sub, nil
}

const submissionColumns = "id, user_id, link, message_id, channel_id, created_at, completed"

// CreateSubmission inserts a new submission row and returns its ID. It does
// not check for an existing active submission; that is the caller's job.
func (s *Store) CreateSubmission(userID, link, messageID, channelID string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO submissions (user_id, link, message_id, channel_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, link, messageID, channelID, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetActiveSubmission returns the user's latest submission, which is by
// definition their active one. Returns nil, nil if the user has none.
func (s *Store) GetActiveSubmission(userID string) (*model.Submission, error) {
	row := s.db.QueryRow(`
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, userID)
	return scanSubmission(row)
}

// GetSubmissionByMessage resolves a submission from the rendered message it
// was posted as. Returns nil, nil when the message is not a submission.
func (s *Store) GetSubmissionByMessage(channelID, messageID string) (*model.Submission, error) {
	row := s.db.QueryRow(`
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE channel_id = ? AND message_id = ?
	`, channelID, messageID)
	return scanSubmission(row)
}

// UpdateSubmissionLink changes a submission's link in place. No new row is
// created, so engagements on the submission are preserved.
func (s *Store) UpdateSubmissionLink(submissionID int64, newLink string) error {
	_, err := s.db.Exec("UPDATE submissions SET link = ? WHERE id = ?", newLink, submissionID)
	return err
}

// MarkSubmissionCompleted sets the completed flag on a submission.
func (s *Store) MarkSubmissionCompleted(submissionID int64) error {
	_, err := s.db.Exec("UPDATE submissions SET completed = 1 WHERE id = ?", submissionID)
	return err
}

// LatestSubmissionByUser returns a mapping of user ID to their latest
// submission ID; this is the membership set of the current round.
func (s *Store) LatestSubmissionByUser() (map[string]int64, error) {
	rows, err := s.db.Query(`
		SELECT user_id, MAX(id)
		FROM submissions
		GROUP BY user_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := make(map[string]int64)
	for rows.Next() {
		var userID string
		var submissionID int64
		if err := rows.Scan(&userID, &submissionID); err != nil {
			return nil, err
		}
		latest[userID] = submissionID
	}
	return latest, rows.Err()
}

// ResetAll deletes all submissions and engagements for a fresh round.
// User point totals are deliberately left untouched.
func (s *Store) ResetAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM engagements"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM submissions"); err != nil {
		return err
	}

	return tx.Commit()
}
