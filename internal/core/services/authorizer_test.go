package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"roomgate/internal/config"
	"roomgate/internal/core/domain"
	"roomgate/internal/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authorizerFixture struct {
	authorizer    *RoomAuthorizer
	conversations *mocks.MockConversationMembership
	centralized   *mocks.MockCentralizedGroupOwnership
	collections   *mocks.MockCollectionOwnership
}

func newAuthorizerFixture(t *testing.T) authorizerFixture {
	ctrl := gomock.NewController(t)
	f := authorizerFixture{
		conversations: mocks.NewMockConversationMembership(ctrl),
		centralized:   mocks.NewMockCentralizedGroupOwnership(ctrl),
		collections:   mocks.NewMockCollectionOwnership(ctrl),
	}
	f.authorizer = NewRoomAuthorizer(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		config.RoomsConfig{
			DefaultGroups:     []string{"backpack-chat", " ", "backpack-chat", "solana-chat"},
			WhitelistedGroups: []string{"mad-lads"},
		},
		f.conversations, f.centralized, f.collections,
	)
	return f
}

func TestRoomAuthorizer_Individual(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow a member of the conversation", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.conversations.EXPECT().ValidateConversationMembership(gomock.Any(), "u1", int64(42)).Return(true, nil).Times(1)

		d, err := f.authorizer.Authorize(ctx, "u1", domain.RoomIndividual, "42", "", "")

		req.NoError(err)
		req.True(d.Allowed)
		req.Equal(domain.PolicyConversation, d.Policy)
		req.Equal(true, d.Context)
	})

	t.Run("should refuse a user outside the conversation", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.conversations.EXPECT().ValidateConversationMembership(gomock.Any(), "u2", int64(42)).Return(false, nil).Times(1)

		d, err := f.authorizer.Authorize(ctx, "u2", domain.RoomIndividual, "42", "", "")

		req.NoError(err)
		req.False(d.Allowed)
		req.Nil(d.Context)
	})

	t.Run("should reject a non numeric conversation id without calling the collaborator", func(t *testing.T) {
		f := newAuthorizerFixture(t)
		f.conversations.EXPECT().ValidateConversationMembership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.authorizer.Authorize(ctx, "u1", domain.RoomIndividual, "forty-two", "", "")

		require.ErrorIs(t, err, domain.ErrInvalidConversation)
	})

	t.Run("should surface collaborator failures", func(t *testing.T) {
		boom := errors.New("db down")
		f := newAuthorizerFixture(t)
		f.conversations.EXPECT().ValidateConversationMembership(gomock.Any(), "u1", int64(7)).Return(false, boom)

		d, err := f.authorizer.Authorize(ctx, "u1", domain.RoomIndividual, "7", "", "")

		require.ErrorIs(t, err, boom)
		require.False(t, d.Allowed)
	})
}

func TestRoomAuthorizer_Group(t *testing.T) {
	ctx := context.Background()

	t.Run("should always allow default groups", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.centralized.EXPECT().ValidateCentralizedGroupOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.collections.EXPECT().ValidateCollectionOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		d, err := f.authorizer.Authorize(ctx, "anyone", domain.RoomGroup, "solana-chat", "", "")

		req.NoError(err)
		req.True(d.Allowed)
		req.Equal(domain.PolicyDefaultGroup, d.Policy)
	})

	t.Run("should delegate whitelisted groups to centralized ownership", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.centralized.EXPECT().ValidateCentralizedGroupOwnership(gomock.Any(), "u1", "mad-lads").Return(true, nil).Times(1)
		f.collections.EXPECT().ValidateCollectionOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		d, err := f.authorizer.Authorize(ctx, "u1", domain.RoomGroup, "mad-lads", "pk", "")

		req.NoError(err)
		req.True(d.Allowed)
		req.Equal(domain.PolicyCentralizedGroup, d.Policy)
	})

	t.Run("should delegate any other group to collection ownership", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.centralized.EXPECT().ValidateCentralizedGroupOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.collections.EXPECT().ValidateCollectionOwnership(gomock.Any(), "u1", "abc").Return(false, nil).Times(1)

		d, err := f.authorizer.Authorize(ctx, "u1", domain.RoomGroup, "abc", "", "mint-1")

		req.NoError(err)
		req.False(d.Allowed)
		req.Equal(domain.PolicyCollectionHolding, d.Policy)
	})

	t.Run("should be safe to call again for the same room", func(t *testing.T) {
		req := require.New(t)
		f := newAuthorizerFixture(t)
		f.collections.EXPECT().ValidateCollectionOwnership(gomock.Any(), "u1", "abc").Return(true, nil).Times(2)

		first, err := f.authorizer.Authorize(ctx, "u1", domain.RoomGroup, "abc", "", "")
		req.NoError(err)
		second, err := f.authorizer.Authorize(ctx, "u1", domain.RoomGroup, "abc", "", "")
		req.NoError(err)

		req.Equal(first, second)
	})
}

func TestRoomAuthorizer_InvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newAuthorizerFixture(t)

	_, err := f.authorizer.Authorize(ctx, "u1", domain.RoomGroup, "  ", "", "")
	require.ErrorIs(t, err, domain.ErrInvalidRoom)

	_, err = f.authorizer.Authorize(ctx, "u1", domain.RoomType("broadcast"), "abc", "", "")
	require.ErrorIs(t, err, domain.ErrInvalidRoomType)
}

func TestRoomAuthorizer_MissingCollaborator(t *testing.T) {
	a := NewRoomAuthorizer(slog.New(slog.NewTextHandler(io.Discard, nil)), config.RoomsConfig{}, nil, nil, nil)

	_, err := a.Authorize(context.Background(), "u1", domain.RoomGroup, "abc", "", "")

	require.ErrorIs(t, err, domain.ErrCollaboratorMissing)
}

func TestRoomAuthorizer_DefaultGroups(t *testing.T) {
	f := newAuthorizerFixture(t)

	require.Equal(t, []string{"backpack-chat", "solana-chat"}, f.authorizer.DefaultGroups())
}
