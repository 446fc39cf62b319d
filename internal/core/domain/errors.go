package domain

import "errors"

var (
	ErrInvalidRoom          = errors.New("invalid room")
	ErrInvalidRoomType      = errors.New("invalid room type")
	ErrInvalidConversation  = errors.New("invalid conversation id")
	ErrUnauthorizedRoom     = errors.New("user has no access to room")
	ErrNotSubscribed        = errors.New("connection is not subscribed to room")
	ErrUnknownFrame         = errors.New("unknown frame type")
	ErrMalformedFrame       = errors.New("malformed frame")
	ErrSessionClosed        = errors.New("session closed")
	ErrBusUnavailable       = errors.New("bus unavailable")
	ErrCollaboratorMissing  = errors.New("ownership collaborator not configured")
	ErrSendBufferFull       = errors.New("send buffer full")
	ErrInvalidBusEnvelope   = errors.New("invalid bus envelope")
	ErrUnsupportedBusDriver = errors.New("unsupported bus driver")
)
