// Package dispatch routes a built payload to create-or-update and keeps the
// query cache honest afterwards. One submission at a time per dispatcher; the
// state machine is idle → submitting → idle with no retry.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tourdesk/client"
	"tourdesk/dehydrate"
	"tourdesk/models"
)

// ErrSubmitting is returned while a previous submission has not settled.
var ErrSubmitting = errors.New("dispatch: a submission is already in flight")

// API is the slice of the REST client the dispatcher needs.
type API interface {
	CreateTour(ctx context.Context, p dehydrate.Payload) (*models.Tour, error)
	UpdateTour(ctx context.Context, id string, p dehydrate.Payload) (*models.Tour, error)
}

// Invalidator is the slice of the query cache the dispatcher needs. A nil
// Invalidator disables invalidation (no cache configured).
type Invalidator interface {
	Invalidate(ctx context.Context, userID, tourID string) error
}

type Dispatcher struct {
	api    API
	cache  Invalidator
	logger *zap.Logger
	userID string

	mu         sync.Mutex
	submitting bool
}

func New(api API, cache Invalidator, userID string, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{api: api, cache: cache, userID: userID, logger: logger}
}

// Submit sends the payload. An empty tourID creates; otherwise updates. The
// server response is the new truth and is returned as-is.
func (d *Dispatcher) Submit(ctx context.Context, tourID string, p dehydrate.Payload) (*models.Tour, error) {
	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return nil, ErrSubmitting
	}
	d.submitting = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.submitting = false
		d.mu.Unlock()
	}()

	var (
		tour *models.Tour
		err  error
	)
	if tourID == "" {
		tour, err = d.api.CreateTour(ctx, p)
	} else {
		tour, err = d.api.UpdateTour(ctx, tourID, p)
	}
	if err != nil {
		d.logger.Warn("submission failed", zap.String("tourid", tourID), zap.Error(err))
		return nil, err
	}

	if d.cache != nil {
		id := tourID
		if id == "" && tour != nil {
			id = tour.TourID
		}
		if cerr := d.cache.Invalidate(ctx, d.userID, id); cerr != nil {
			// stale cache is an inconvenience, not a failed submit
			d.logger.Warn("cache invalidation failed", zap.Error(cerr))
		}
	}
	return tour, nil
}

// Message reduces any submission error to the single line shown to the
// operator. Priority: structured server message, transport error, then a
// stringified fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrSubmitting) {
		return "a submission is already in progress"
	}
	return fmt.Sprintf("request failed: %v", err)
}
