package postgres

import (
	"context"
	"database/sql"
	"roomgate/internal/core/domain"
)

type GroupRepo struct {
	db *sql.DB
}

func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

var _ domain.CentralizedGroupOwnership = (*GroupRepo)(nil)

/*
	-- Members of the whitelisted, non-NFT groups
	CREATE TABLE centralized_group_members (
		group_id TEXT NOT NULL,
		user_id  TEXT NOT NULL,
		PRIMARY KEY (group_id, user_id)
	);
*/

func (r *GroupRepo) ValidateCentralizedGroupOwnership(ctx context.Context, userID, groupID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM centralized_group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`, groupID, userID).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}
