package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Ledger persists which question ids have already been presented to a
// user in a completed exam. It implements exam.Ledger.
//
// Writes go through a single transaction, so a crash mid-write never
// leaves a partially-updated set visible to a later Load.
type Ledger struct {
	db *sql.DB
}

// Load returns the set of used question ids for a user. A user with no
// history gets an empty set, never an error.
func (l *Ledger) Load(ctx context.Context, user string) (map[string]bool, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT question_id FROM used_questions WHERE user_id = ?", user)
	if err != nil {
		return nil, fmt.Errorf("load used questions for %q: %w", user, err)
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan used question: %w", err)
		}
		used[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load used questions for %q: %w", user, err)
	}
	return used, nil
}

// MarkUsed merges ids into the persisted set for a user. Already-present
// ids are ignored, so the operation is idempotent.
func (l *Ledger) MarkUsed(ctx context.Context, user string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mark used: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO used_questions (user_id, question_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("mark used: prepare: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, user, id); err != nil {
			return fmt.Errorf("mark used: insert %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mark used: commit: %w", err)
	}
	return nil
}

// Reset clears the persisted set for a user.
func (l *Ledger) Reset(ctx context.Context, user string) error {
	if _, err := l.db.ExecContext(ctx,
		"DELETE FROM used_questions WHERE user_id = ?", user); err != nil {
		return fmt.Errorf("reset used questions for %q: %w", user, err)
	}
	return nil
}

// CountUsed returns how many questions the user has already been shown.
func (l *Ledger) CountUsed(ctx context.Context, user string) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM used_questions WHERE user_id = ?", user).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count used questions for %q: %w", user, err)
	}
	return n, nil
}

// Users returns the user identities present in the ledger, for stats.
func (l *Ledger) Users(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT DISTINCT user_id FROM used_questions ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("list ledger users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan ledger user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
