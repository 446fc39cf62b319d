package contracts

import "context"

type AsyncWorker interface {
	// Run subscribes the process to a room channel on the bus.
	Run(ctx context.Context, channel string) error
	// ProcessMessage decodes one bus payload and hands it to local delivery.
	ProcessMessage(ctx context.Context, channel string, raw []byte) error
}
