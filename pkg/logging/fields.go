package logging

import "log/slog"

// Domain identifiers

func Connection(id string) slog.Attr {
	return slog.String("connection_id", id)
}

func User(id string) slog.Attr {
	return slog.String("user_id", id)
}

func Room(id string) slog.Attr {
	return slog.String("room", id)
}

func RoomType(t string) slog.Attr {
	return slog.String("room_type", t)
}

func Channel(key string) slog.Attr {
	return slog.String("channel", key)
}

func Frame(kind string) slog.Attr {
	return slog.String("frame", kind)
}

// Request / tracing

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

func TraceID(id string) slog.Attr {
	return slog.String("trace_id", id)
}

// Error handling

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
