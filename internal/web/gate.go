package web

import (
	"context"
	"runtime"

	"github.com/alnah/go-mdpdf/internal/config"
)

// renderGate bounds concurrent PDF and HTML renders. Rendering is
// CPU-bound, so admitting more renders than cores only adds latency.
type renderGate struct {
	slots chan struct{}
}

func newRenderGate(configured int) *renderGate {
	return &renderGate{slots: make(chan struct{}, resolveGateSize(configured))}
}

// resolveGateSize prefers an explicit worker count and otherwise
// derives one from GOMAXPROCS, clamped to the configurable range.
func resolveGateSize(configured int) int {
	if configured > 0 {
		if configured > config.MaxWorkers {
			return config.MaxWorkers
		}
		return configured
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	if n > config.MaxWorkers {
		n = config.MaxWorkers
	}
	return n
}

// Acquire blocks until a render slot frees or ctx expires.
func (g *renderGate) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *renderGate) Release() {
	<-g.slots
}

func (g *renderGate) Size() int {
	return cap(g.slots)
}
