package worker

import (
	"context"
	"log"
	"time"
)

type Pinger interface {
	Ping() int
}

// KeepaliveWorker pings live feed subscribers on every tick. Subscribers that
// cannot be reached are dropped by the hub.
type KeepaliveWorker struct {
	hub    Pinger
	ticker *time.Ticker
}

func NewKeepaliveWorker(hub Pinger, interval time.Duration) *KeepaliveWorker {
	return &KeepaliveWorker{
		hub:    hub,
		ticker: time.NewTicker(interval),
	}
}

func (w *KeepaliveWorker) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.ping()
		}
	}
}

func (w *KeepaliveWorker) ping() {
	if dropped := w.hub.Ping(); dropped > 0 {
		log.Printf("[KeepaliveWorker] dropped %d unreachable subscribers", dropped)
	}
}
