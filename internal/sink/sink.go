// Package sink persists assembled records. The extraction core has no
// file-format concerns; anything that can take the ordered record sequence can
// be a sink.
package sink

import (
	"context"

	"github.com/google/uuid"
	"github.com/specsheet/specsheet/internal/assemble"
)

// Sink consumes the full, ordered record sequence of one run.
type Sink interface {
	Write(ctx context.Context, runID uuid.UUID, records []assemble.Record) error
}
