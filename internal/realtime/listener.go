package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/vladHotelverse/hotel-upsell/internal/data/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Listener consumes proposal row changes over Postgres LISTEN/NOTIFY and
// fans them out in-process. It holds one dedicated connection; a dropped
// connection is re-acquired after a short pause.
type Listener struct {
	pool *pgxpool.Pool
	log  *zap.Logger

	mu     sync.RWMutex
	subs   map[int]func(repository.ProposalChangePayload)
	nextID int
}

func NewListener(pool *pgxpool.Pool, log *zap.Logger) *Listener {
	return &Listener{
		pool: pool,
		log:  log.With(zap.String("component", "pg_listener")),
		subs: make(map[int]func(repository.ProposalChangePayload)),
	}
}

// Subscribe registers fn for every row-change payload, returns a cancel func.
func (l *Listener) Subscribe(fn func(repository.ProposalChangePayload)) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn("LISTEN connection lost, reconnecting", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+repository.ProposalChangeChannel); err != nil {
		return err
	}

	l.log.Info("Listening for proposal row changes",
		zap.String("channel", repository.ProposalChangeChannel))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var payload repository.ProposalChangePayload
		if err := json.Unmarshal([]byte(notification.Payload), &payload); err != nil {
			l.log.Warn("Malformed row-change payload", zap.Error(err))
			continue
		}

		l.dispatch(payload)
	}
}

func (l *Listener) dispatch(payload repository.ProposalChangePayload) {
	l.mu.RLock()
	subs := make([]func(repository.ProposalChangePayload), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.RUnlock()

	for _, fn := range subs {
		fn(payload)
	}
}
