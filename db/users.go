package db

import (
	"database/sql"
	"time"

	"github.com/enryu8191/Creator-Bot/model"
)

// UpsertUser inserts a user or refreshes their display name. Points are
// never lowered by this call.
func (s *Store) UpsertUser(userID, displayName string) error {
	_, err := s.db.Exec(`
		INSERT INTO users (user_id, display_name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET display_name = excluded.display_name
	`, userID, displayName, time.Now().Unix())
	return err
}

// GetUser retrieves a user by ID. Returns nil, nil if the user is unknown.
func (s *Store) GetUser(userID string) (*model.User, error) {
	var user model.User
	err := s.db.QueryRow(`
		SELECT user_id, display_name, total_points, created_at
		FROM users WHERE user_id = ?
	`, userID).Scan(&user.UserID, &user.DisplayName, &user.TotalPoints, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IncrementPoints adds delta to a user's running point total.
func (s *Store) IncrementPoints(userID string, delta int) error {
	_, err := s.db.Exec("UPDATE users SET total_points = total_points + ? WHERE user_id = ?", delta, userID)
	return err
}

// Leaderboard returns the top users by points. Order among equal scores
// is unspecified.
func (s *Store) Leaderboard(limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.db.Query(`
		SELECT user_id, display_name, total_points
		FROM users
		ORDER BY total_points DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.Points); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
