package postgres

import (
	"context"
	"database/sql"
	"roomgate/internal/core/domain"
)

type ConversationRepo struct {
	db *sql.DB
}

func NewConversationRepo(db *sql.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

var _ domain.ConversationMembership = (*ConversationRepo)(nil)

/*
	-- Friendships; the row id is the individual room id
	CREATE TABLE friendships (
		id          BIGSERIAL PRIMARY KEY,
		user1       TEXT NOT NULL,
		user2       TEXT NOT NULL,
		are_friends BOOLEAN NOT NULL DEFAULT false,
		blocked     BOOLEAN NOT NULL DEFAULT false
	);
*/

// ValidateConversationMembership reports whether userID is one of the two
// parties of the friendship behind conversationID.
func (r *ConversationRepo) ValidateConversationMembership(ctx context.Context, userID string, conversationID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friendships
			WHERE id = $1
			  AND (user1 = $2 OR user2 = $2)
		)
	`, conversationID, userID).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}
