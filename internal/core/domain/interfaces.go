//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../../mocks/mock_interfaces.go -package=mocks
package domain

import "context"

// ConversationMembership answers whether a user belongs to a direct conversation.
type ConversationMembership interface {
	ValidateConversationMembership(ctx context.Context, userID string, conversationID int64) (bool, error)
}

// CentralizedGroupOwnership covers whitelisted groups whose membership is not NFT based.
type CentralizedGroupOwnership interface {
	ValidateCentralizedGroupOwnership(ctx context.Context, userID string, groupID string) (bool, error)
}

// CollectionOwnership covers open NFT collections.
type CollectionOwnership interface {
	ValidateCollectionOwnership(ctx context.Context, userID string, collectionID string) (bool, error)
	// ListOwnedCollections may return duplicates and empty ids; callers clean it up.
	ListOwnedCollections(ctx context.Context, userID string) ([]string, error)
}
