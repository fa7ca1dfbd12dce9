package ports

import "context"

// EventPublisher emits entity change notifications after successful
// writes. Publishing is synchronous fire-and-forget; a failed publish
// never fails the request that triggered it.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
