package domain

import (
	"strings"
)

// RoomType tells which ownership model gates a room.
type RoomType string

const (
	RoomIndividual RoomType = "individual"
	RoomGroup      RoomType = "group"
)

func (t RoomType) Valid() bool {
	return t == RoomIndividual || t == RoomGroup
}

// Channel key prefixes used by the fan-out registry and the bus.
const (
	prefixUser         = "INDIVIDUAL_"
	prefixCollection   = "COLLECTION_"
	prefixConversation = "CONVERSATION_"
)

// UserChannel is the per-user inbox every connection joins on connect.
func UserChannel(userID string) string {
	return prefixUser + userID
}

// CollectionChannel is the channel of a group room.
func CollectionChannel(groupID string) string {
	return prefixCollection + groupID
}

// RoomChannel maps a room onto its fan-out channel key.
func RoomChannel(roomType RoomType, room string) string {
	if roomType == RoomIndividual {
		return prefixConversation + room
	}
	return CollectionChannel(room)
}

// ParseRoomChannel is the inverse of RoomChannel. The user inbox has no room.
func ParseRoomChannel(channel string) (RoomType, string, bool) {
	switch {
	case strings.HasPrefix(channel, prefixConversation):
		return RoomIndividual, strings.TrimPrefix(channel, prefixConversation), true
	case strings.HasPrefix(channel, prefixCollection):
		return RoomGroup, strings.TrimPrefix(channel, prefixCollection), true
	}
	return "", "", false
}

// Subscription is the authorized association between one connection and one room.
type Subscription struct {
	Type RoomType `json:"type"`
	Room string   `json:"room"`
}

func (s Subscription) Channel() string {
	return RoomChannel(s.Type, s.Room)
}

// Policy names the rule that granted (or refused) access to a room.
type Policy string

const (
	PolicyConversation      Policy = "conversation"
	PolicyDefaultGroup      Policy = "default_group"
	PolicyCentralizedGroup  Policy = "centralized_group"
	PolicyCollectionHolding Policy = "collection"
)

// Decision is the outcome of a room authorization. Context is handed to the
// broker's subscribe notification untouched.
type Decision struct {
	Allowed bool
	Policy  Policy
	Context any
}

// Identity is what a connection knows about itself.
type Identity struct {
	ConnectionID string
	UserID       string
}
