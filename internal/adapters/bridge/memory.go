package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/ports/output"
)

// HandlerFunc serves one backend method. Arguments arrive JSON encoded, as
// they would over the wire.
type HandlerFunc func(ctx context.Context, args []json.RawMessage) (any, error)

var _ output.Bridge = (*MemoryBridge)(nil)

// MemoryBridge dispatches calls to in-process handlers.
type MemoryBridge struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{handlers: make(map[string]HandlerFunc)}
}

// Handle registers h for method, replacing any previous handler.
func (b *MemoryBridge) Handle(method string, h HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method] = h
}

func (b *MemoryBridge) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	b.mu.RLock()
	h, ok := b.handlers[method]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("invoke %s: unknown method: %w", method, domain.ErrBridgeRejected)
	}

	raws := make([]json.RawMessage, len(args))
	for i, a := range args {
		buf, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("invoke %s: encode arg %d: %w", method, i, err)
		}
		raws[i] = buf
	}

	res, err := h(ctx, raws)
	if err != nil {
		if !errors.Is(err, domain.ErrBridgeRejected) {
			err = fmt.Errorf("%w: %w", domain.ErrBridgeRejected, err)
		}
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	out, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: encode result: %w", method, err)
	}
	return out, nil
}
