package recommender

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidArgument marks malformed input. It is a caller bug; retrying the
// same input fails the same way.
var ErrInvalidArgument = errors.New("invalid argument")

// Engine wires the scorer, blender and ranker into one request/response call.
// An Engine holds only configuration and is safe for concurrent use.
type Engine struct {
	limit   int
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit overrides DefaultLimit.
func WithLimit(limit int) Option {
	return func(e *Engine) {
		e.limit = limit
	}
}

// WithScanWorkers partitions the corpus scan across n goroutines.
func WithScanWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// New returns an Engine with DefaultLimit and a serial scan.
func New(opts ...Option) *Engine {
	e := &Engine{limit: DefaultLimit, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Limit returns the configured result cap.
func (e *Engine) Limit() int {
	return e.limit
}

// HasSignal reports whether items hold enough distinct ids to be worth
// scoring. Callers can use it to skip fetching the corpus.
func HasSignal(items []string) bool {
	return len(NewItemSet(items...)) >= MinSelection
}

// Validate checks a selection for malformed identifiers.
func Validate(sel Selection) error {
	if sel.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	for i, item := range sel.Items {
		if item == "" {
			return fmt.Errorf("%w: item id at position %d is empty", ErrInvalidArgument, i)
		}
	}
	return nil
}

// Recommend ranks items for sel using the pre-fetched corpus and history.
//
// A selection with fewer than two distinct items yields an empty result
// without touching the corpus; callers should read that as "add more items".
// Otherwise the corpus is scored with the active list excluded, blended with
// the history records that belong to sel.UserID, and ranked.
func (e *Engine) Recommend(ctx context.Context, sel Selection, corpus []ListSnapshot, history []HistoryRecord) (Result, error) {
	if e.limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, e.limit)
	}
	if err := Validate(sel); err != nil {
		return nil, err
	}

	current := NewItemSet(sel.Items...)
	if len(current) < MinSelection {
		return Result{}, nil
	}

	scores, err := ScoreParallel(ctx, current, sel.ListID, corpus, e.workers)
	if err != nil {
		return nil, err
	}

	scores = Blend(scores, ownHistory(sel.UserID, history), current)
	return Rank(scores, e.limit)
}

// ownHistory keeps the records of userID. Records without a user id are
// assumed to have been fetched for that user already.
func ownHistory(userID string, history []HistoryRecord) []HistoryRecord {
	own := make([]HistoryRecord, 0, len(history))
	for _, record := range history {
		if record.UserID != "" && record.UserID != userID {
			continue
		}
		own = append(own, record)
	}
	return own
}
