// Package events publishes run progress over NATS so downstream consumers can
// watch extraction runs without tailing logs. The publisher is optional: the
// tool runs fine without a broker configured.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	SubjectRunStarted        = "specsheet.run.started"
	SubjectDocumentProcessed = "specsheet.document.processed"
	SubjectRunCompleted      = "specsheet.run.completed"
)

// RunStarted announces a new extraction run.
type RunStarted struct {
	RunID     string `json:"run_id"`
	Files     int    `json:"files"`
	Timestamp string `json:"timestamp"`
}

// DocumentProcessed reports one document's record count.
type DocumentProcessed struct {
	RunID    string `json:"run_id"`
	FileName string `json:"file_name"`
	Records  int    `json:"records"`
}

// RunCompleted reports the finished run.
type RunCompleted struct {
	RunID    string `json:"run_id"`
	Records  int    `json:"records"`
	Duration string `json:"duration"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func Connect(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// Publish marshals data and sends it on subject. A nil publisher is a no-op,
// so callers don't have to guard every site when NATS is unconfigured.
func (p *Publisher) Publish(subject string, data any) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}

// Now returns the RFC 3339 timestamp used in event payloads.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
