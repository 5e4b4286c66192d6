package events

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"tripbudget/internal/usecase/interfaces"
)

const subjectPrefix = "tripbudget.events."

// NatsEventPublisher publishes core events to NATS for the notification and
// editor subsystems.
//
// Subject convention: tripbudget.events.<event_type>
//
// Publishes are fire-and-forget: errors are logged and never propagated, so
// a broker outage cannot interrupt a reconstruction or an approval.
type NatsEventPublisher struct {
	conn *nats.Conn
	log  zerolog.Logger
}

var _ interfaces.IEventPublisher = (*NatsEventPublisher)(nil)

// eventEnvelope is the JSON schema put on the wire.
type eventEnvelope struct {
	EventType string                 `json:"event_type"`
	Timestamp string                 `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// ConnectNATS dials the broker named by NATS_URL. An unset NATS_URL is not
// an error: it returns a nil connection and the publisher degrades to
// logging only.
func ConnectNATS(log zerolog.Logger) (*nats.Conn, error) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		log.Info().Msg("events: NATS_URL unset, event publishing disabled")
		return nil, nil
	}

	conn, err := nats.Connect(url,
		nats.Name("tripbudget"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Msg("events: connected to NATS")
	return conn, nil
}

func NewNatsEventPublisher(conn *nats.Conn, log zerolog.Logger) *NatsEventPublisher {
	return &NatsEventPublisher{conn: conn, log: log}
}

func (p *NatsEventPublisher) Publish(_ context.Context, eventType string, payload map[string]interface{}) {
	if p.conn == nil {
		p.log.Debug().Str("event_type", eventType).Msg("events: no broker, event dropped")
		return
	}

	data, err := json.Marshal(eventEnvelope{
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Payload:   payload,
	})
	if err != nil {
		p.log.Warn().Err(err).Str("event_type", eventType).Msg("events: failed to marshal event")
		return
	}

	subject := subjectPrefix + eventType
	if err := p.conn.Publish(subject, data); err != nil {
		p.log.Warn().Err(err).Str("subject", subject).Msg("events: publish failed (non-fatal)")
		return
	}

	p.log.Debug().Str("subject", subject).Msg("events: event published")
}
