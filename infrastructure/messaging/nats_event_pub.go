package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"taskhub/domain/ports"
	"taskhub/pkg/logger"
)

// Subjects published after successful writes. Payload is the JSON
// response representation of the entity.
const (
	SubjectPrefix = "taskhub"
)

// NATSEventPublisher implements ports.EventPublisher on core NATS.
type NATSEventPublisher struct {
	conn *nats.Conn
}

func NewNATSEventPublisher(url string) (*NATSEventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("taskhub-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS connected", "url", url)

	return &NATSEventPublisher{conn: conn}, nil
}

func (p *NATSEventPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.conn.Publish(SubjectPrefix+"."+subject, data)
}

func (p *NATSEventPublisher) Close() {
	if p.conn != nil {
		p.conn.Drain()
	}
}

var _ ports.EventPublisher = (*NATSEventPublisher)(nil)
