package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ytget/storefront/internal/storage"
)

// persister writes full cart snapshots in the background. Every snapshot
// carries a sequence number; a write older than the newest successful one is
// dropped, so the store converges on the latest state.
type persister struct {
	kv     storage.KV
	key    string
	logger *slog.Logger

	seqMu sync.Mutex
	seq   uint64

	writeMu sync.Mutex
	written uint64

	pending sync.WaitGroup
}

func newPersister(kv storage.KV, key string, logger *slog.Logger) *persister {
	return &persister{kv: kv, key: key, logger: logger}
}

// enqueue schedules a write and returns immediately
func (p *persister) enqueue(data []byte) {
	p.seqMu.Lock()
	p.seq++
	seq := p.seq
	p.seqMu.Unlock()

	p.pending.Add(1)
	go p.write(seq, data)
}

func (p *persister) write(seq uint64, data []byte) {
	defer p.pending.Done()

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if seq <= p.written {
		return
	}
	if err := p.kv.Save(p.key, data); err != nil {
		p.logger.Warn("cart write failed", "key", p.key, "seq", seq, "error", err)
		return
	}
	p.written = seq
}

// wait blocks until every scheduled write has finished or ctx is done
func (p *persister) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
