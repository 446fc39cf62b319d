package domain

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	TypeReady        = "WS_READY"
	TypeSubscribe    = "SUBSCRIBE"
	TypeUnsubscribe  = "UNSUBSCRIBE"
	TypeChatMessages = "CHAT_MESSAGES"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Envelope is the wire shape shared by every frame in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Frame is one of SubscribeFrame, UnsubscribeFrame or ChatMessagesFrame.
type Frame interface {
	Kind() string
	Target() Subscription
}

// RoomRef addresses a room and carries the optional ownership hints.
type RoomRef struct {
	Room      string   `json:"room" validate:"required"`
	Type      RoomType `json:"type" validate:"required,oneof=individual group"`
	PublicKey string   `json:"publicKey,omitempty"`
	Mint      string   `json:"mint,omitempty"`
}

func (r RoomRef) Target() Subscription {
	return Subscription{Type: r.Type, Room: r.Room}
}

type SubscribeFrame struct {
	RoomRef
}

func (SubscribeFrame) Kind() string { return TypeSubscribe }

type UnsubscribeFrame struct {
	RoomRef
}

func (UnsubscribeFrame) Kind() string { return TypeUnsubscribe }

// ChatMessagesFrame carries a batch of opaque client messages for one room.
type ChatMessagesFrame struct {
	RoomRef
	Messages []json.RawMessage `json:"messages" validate:"dive,required"`
}

func (ChatMessagesFrame) Kind() string { return TypeChatMessages }

// ParseFrame decodes and validates one inbound client frame.
func ParseFrame(data []byte) (Frame, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	var frame Frame
	switch env.Type {
	case TypeSubscribe:
		var f SubscribeFrame
		if err := decodePayload(env.Payload, &f); err != nil {
			return nil, err
		}
		frame = f
	case TypeUnsubscribe:
		var f UnsubscribeFrame
		if err := decodePayload(env.Payload, &f); err != nil {
			return nil, err
		}
		frame = f
	case TypeChatMessages:
		var f ChatMessagesFrame
		if err := decodePayload(env.Payload, &f); err != nil {
			return nil, err
		}
		frame = f
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, env.Type)
	}
	return frame, nil
}

func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing payload", ErrMalformedFrame)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return nil
}

// ReadyFrame is sent once when a connection is accepted.
func ReadyFrame() Envelope {
	return Envelope{Type: TypeReady, Payload: json.RawMessage(`{}`)}
}

// ChatDelivery is the server to client payload of a fanned-out chat message.
type ChatDelivery struct {
	Room         string            `json:"room"`
	Type         RoomType          `json:"type"`
	SenderUserID string            `json:"sender_user_id"`
	Messages     []json.RawMessage `json:"messages"`
}

func NewChatDeliveryFrame(d ChatDelivery) (Envelope, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: TypeChatMessages, Payload: raw}, nil
}

// BusKind discriminates payloads travelling on the bus and the ledger.
type BusKind string

const (
	BusChat        BusKind = "chat"
	BusSubscribe   BusKind = "subscribe"
	BusUnsubscribe BusKind = "unsubscribe"
)

// BusMessage is the envelope published on a room channel.
type BusMessage struct {
	Kind         BusKind         `json:"kind"`
	ConnectionID string          `json:"connection_id"`
	UserID       string          `json:"user_id"`
	Room         string          `json:"room"`
	Type         RoomType        `json:"type"`
	Message      json.RawMessage `json:"message"`
}

// SubscriptionEvent is the bookkeeping record of a subscribe or unsubscribe.
type SubscriptionEvent struct {
	Kind         BusKind  `json:"kind"`
	ConnectionID string   `json:"connection_id"`
	Room         string   `json:"room"`
	Type         RoomType `json:"type"`
	Context      any      `json:"context,omitempty"`
	At           int64    `json:"at"`
}

func (e SubscriptionEvent) Channel() string {
	return RoomChannel(e.Type, e.Room)
}
