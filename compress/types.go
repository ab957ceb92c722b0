package compress

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by Compress.
var (
	// ErrGraphNil is returned when a nil raw graph is passed.
	ErrGraphNil = errors.New("compress: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is not in the raw graph.
	ErrStartVertexNotFound = errors.New("compress: start vertex not found")

	// ErrDisconnectedGraph is returned when a kept valve cannot reach another
	// kept valve. The concrete error is *DisconnectedGraphError.
	ErrDisconnectedGraph = errors.New("compress: graph is disconnected")

	// ErrUnknownNode is returned by Graph.Distance for an id that was not kept.
	ErrUnknownNode = errors.New("compress: node not in compressed graph")
)

// DisconnectedGraphError names the first unreachable pair found.
type DisconnectedGraphError struct {
	From string
	To   string
}

func (e *DisconnectedGraphError) Error() string {
	return fmt.Sprintf("%v: %q cannot reach %q", ErrDisconnectedGraph, e.From, e.To)
}

// Is lets errors.Is(err, ErrDisconnectedGraph) match.
func (e *DisconnectedGraphError) Is(target error) bool { return target == ErrDisconnectedGraph }

// Option configures Compress.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *zap.Logger
}

func defaultOptions() options {
	return options{ctx: context.Background(), logger: zap.NewNop()}
}

// WithContext cancels the per-node traversals when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger receives a debug summary of kept and dropped valves.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
