package overview

import (
	// Go Internal Packages
	"context"
	"encoding/json"

	// Local Packages
	models "debt-ledger/models"

	// External Packages
	"go.uber.org/zap"
)

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

// ChangeProcessor turns change-event batches into overview refreshes. One
// batch triggers at most one recomputation; recomputing is idempotent, so
// collapsing a burst of events is safe.
type ChangeProcessor struct {
	Logger       *zap.Logger
	Orchestrator *Orchestrator
	DLQ          DeadLetterQueue
}

func NewChangeProcessor(logger *zap.Logger, orchestrator *Orchestrator, dlq DeadLetterQueue) *ChangeProcessor {
	return &ChangeProcessor{Logger: logger, Orchestrator: orchestrator, DLQ: dlq}
}

func (p *ChangeProcessor) ProcessRecords(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	relevant := 0
	var failed []models.Record
	for _, record := range records {
		var event models.ChangeEvent
		if err := json.Unmarshal(record.Value, &event); err != nil {
			p.Logger.Error("failed to unmarshal change event", zap.Error(err))
			failed = append(failed, record)
			continue
		}

		switch event.Entity {
		case "transaction", "wallet":
			relevant++
		default:
			p.Logger.Warn("ignoring change event for unknown entity", zap.String("entity", event.Entity))
		}
	}

	if len(failed) > 0 && p.DLQ != nil {
		if err := p.DLQ.Send(ctx, failed); err != nil {
			// The DLQ is the only trace of undecodable events; a failed
			// write must not go silent.
			p.Logger.Error("failed to dead-letter undecodable change events",
				zap.Int("count", len(failed)), zap.Error(err))
		}
	}
	if relevant == 0 {
		return nil
	}
	return p.Orchestrator.Refresh(ctx)
}
