package postgres

import (
	"context"
	"database/sql"
	"roomgate/internal/core/domain"
)

type CollectionRepo struct {
	db *sql.DB
}

func NewCollectionRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db}
}

var _ domain.CollectionOwnership = (*CollectionRepo)(nil)

/*
	-- NFT holdings indexed per wallet owner
	CREATE TABLE user_nfts (
		user_id        TEXT NOT NULL,
		public_key     TEXT NOT NULL,
		nft_id         TEXT NOT NULL,
		collection_id  TEXT NOT NULL,
		PRIMARY KEY (public_key, nft_id)
	);
*/

func (r *CollectionRepo) ValidateCollectionOwnership(ctx context.Context, userID, collectionID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_nfts
			WHERE user_id = $1 AND collection_id = $2
		)
	`, userID, collectionID).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *CollectionRepo) ListOwnedCollections(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT collection_id
		FROM user_nfts
		WHERE user_id = $1
		ORDER BY collection_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
