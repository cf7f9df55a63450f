package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPinger struct {
	calls atomic.Int32
}

func (p *countingPinger) Ping() int {
	p.calls.Add(1)
	return 1
}

func TestKeepaliveWorker_PingsUntilCancelled(t *testing.T) {
	pinger := &countingPinger{}
	w := NewKeepaliveWorker(pinger, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.StartWorker(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pinger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
