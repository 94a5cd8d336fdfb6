package submit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"invctl/internal/catalog"
	"invctl/internal/draft"
	"invctl/internal/models"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission is still pending
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// Status is the visible state of the submission workflow
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OrderPoster sends a prepared submission to the back end
type OrderPoster interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
}

// Controller orchestrates the submit action: validate, serialize, send,
// interpret the response, and drive the visible status. Exactly one
// submission can be in flight at a time.
type Controller struct {
	poster    OrderPoster
	draft     *draft.Order
	onSuccess func()
	log       *slog.Logger

	mu      sync.Mutex
	status  Status
	failure string
}

// NewController creates a controller for the given draft. onSuccess is
// invoked exactly once per successful submission, after the draft has
// been reset; the order list view hangs its refresh on it. It may be nil.
func NewController(poster OrderPoster, d *draft.Order, onSuccess func(), log *slog.Logger) *Controller {
	return &Controller{
		poster:    poster,
		draft:     d,
		onSuccess: onSuccess,
		log:       log,
		status:    StatusIdle,
	}
}

// Status returns the current submission status
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// FailureMessage returns the diagnostic text of the last failed
// submission, or empty when the status is not StatusFailed
func (c *Controller) FailureMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// Submit validates the draft against the catalog and sends the order.
//
// A validation failure keeps the status at idle, makes no network call,
// and leaves the draft untouched. The payload is snapshotted before the
// call begins, so draft edits arriving while the request is pending
// cannot affect it. On success the draft is reset and the refresh hook
// fires; on failure the draft is preserved so the user can correct and
// resubmit.
func (c *Controller) Submit(ctx context.Context, cat *catalog.Catalog) (*models.Order, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}

	// Resubmitting from a terminal status implicitly dismisses it
	c.status = StatusIdle
	c.failure = ""

	req, err := Prepare(c.draft, cat)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	// Visible before the network call begins
	c.status = StatusSubmitting
	c.failure = ""
	c.mu.Unlock()

	order, err := c.poster.CreateOrder(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusFailed
		c.failure = err.Error()
		c.log.Error("order submission failed", "error", err)
		return nil, err
	}

	c.status = StatusSucceeded
	c.draft.Reset()
	c.log.Info("order submitted", "order_number", order.OrderNumber, "total", order.TotalAmount)

	if c.onSuccess != nil {
		c.onSuccess()
	}

	return order, nil
}

// Dismiss acknowledges a terminal status and returns to idle. It has no
// effect while idle or submitting.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusSucceeded || c.status == StatusFailed {
		c.status = StatusIdle
		c.failure = ""
	}
}

// Cancel abandons the composition: the draft returns to its initial
// state and the status to idle. A submission already in flight is not
// interrupted; its eventual result is simply not surfaced.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.Reset()
	if c.status != StatusSubmitting {
		c.status = StatusIdle
		c.failure = ""
	}
}
