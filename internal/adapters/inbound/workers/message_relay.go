package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/stegophrase/internal/usecases"
)

// MessageRelay is a runnable that periodically publishes pending artifact events from
// the outbox to Pub/Sub.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	BatchTimeout        time.Duration        `config:"OUTBOX_BATCH_TIMEOUT" default:"10s"`
	workerExecutionChan chan struct{}
}

// Run relays a batch on every tick until ctx is cancelled.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Printf("MessageRelay: running every %s", mr.Interval)
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.relayBatch(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: error relaying batch: %v", err)
			}
			if mr.workerExecutionChan != nil {
				select {
				case mr.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) relayBatch(ctx context.Context) error {
	if mr.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mr.BatchTimeout)
		defer cancel()
	}
	return mr.RelayOutbox.Execute(ctx)
}
