package submit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invctl/internal/draft"
	"invctl/internal/models"
	"invctl/pkg/logger"
)

type mockPoster struct {
	mu       sync.Mutex
	requests []*models.CreateOrderRequest
	order    *models.Order
	err      error

	// When set, CreateOrder signals started and blocks until release
	// is closed
	started chan struct{}
	release chan struct{}
}

func (p *mockPoster) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.started != nil {
		close(p.started)
		<-p.release
	}

	if p.err != nil {
		return nil, p.err
	}
	return p.order, nil
}

func (p *mockPoster) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func validDraft() *draft.Order {
	d := draft.New()
	d.UpdateItem(0, draft.FieldProduct, "1")
	d.UpdateItem(0, draft.FieldQuantity, "2")
	return d
}

func TestSubmit_Success(t *testing.T) {
	poster := &mockPoster{order: &models.Order{ID: 42, OrderNumber: "ORD-001", TotalAmount: 19.98}}
	d := validDraft()

	refreshes := 0
	ctrl := NewController(poster, d, func() { refreshes++ }, logger.New("error"))

	order, err := ctrl.Submit(context.Background(), testCatalog())

	require.NoError(t, err)
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, StatusSucceeded, ctrl.Status())

	// Draft resets to a single empty item
	require.Equal(t, 1, d.Len())
	assert.Empty(t, d.Items()[0].ProductRef)

	// The refresh hook fires exactly once
	assert.Equal(t, 1, refreshes)
}

func TestSubmit_ValidationFailureMakesNoCall(t *testing.T) {
	poster := &mockPoster{}
	ctrl := NewController(poster, draft.New(), nil, logger.New("error"))

	_, err := ctrl.Submit(context.Background(), testCatalog())

	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Equal(t, StatusIdle, ctrl.Status())
	assert.Zero(t, poster.calls())
}

func TestSubmit_UnknownProductMakesNoCall(t *testing.T) {
	poster := &mockPoster{}
	d := draft.New()
	d.UpdateItem(0, draft.FieldProduct, "404")
	d.UpdateItem(0, draft.FieldQuantity, "1")
	ctrl := NewController(poster, d, nil, logger.New("error"))

	_, err := ctrl.Submit(context.Background(), testCatalog())

	var unknown *UnknownProductError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, StatusIdle, ctrl.Status())
	assert.Zero(t, poster.calls())
}

func TestSubmit_ServerFailurePreservesDraft(t *testing.T) {
	poster := &mockPoster{err: errors.New("Insufficient stock for product: Steel Bolt M8")}
	d := validDraft()
	refreshes := 0
	ctrl := NewController(poster, d, func() { refreshes++ }, logger.New("error"))

	_, err := ctrl.Submit(context.Background(), testCatalog())

	require.Error(t, err)
	assert.Equal(t, StatusFailed, ctrl.Status())
	assert.Equal(t, "Insufficient stock for product: Steel Bolt M8", ctrl.FailureMessage())

	// Draft items are unchanged so the user can correct and resubmit
	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductRef)
	assert.Equal(t, "2", items[0].RequestedQuantity)

	assert.Zero(t, refreshes)
}

func TestSubmit_RejectsReentrantSubmit(t *testing.T) {
	poster := &mockPoster{
		order:   &models.Order{OrderNumber: "ORD-002"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	d := validDraft()
	ctrl := NewController(poster, d, nil, logger.New("error"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := ctrl.Submit(context.Background(), testCatalog())
		assert.NoError(t, err)
	}()

	<-poster.started
	assert.Equal(t, StatusSubmitting, ctrl.Status())

	_, err := ctrl.Submit(context.Background(), testCatalog())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(poster.release)
	wg.Wait()

	assert.Equal(t, StatusSucceeded, ctrl.Status())
	assert.Equal(t, 1, poster.calls())
}

func TestSubmit_PayloadIsSnapshotted(t *testing.T) {
	poster := &mockPoster{
		order:   &models.Order{OrderNumber: "ORD-003"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	d := validDraft()
	ctrl := NewController(poster, d, nil, logger.New("error"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = ctrl.Submit(context.Background(), testCatalog())
	}()

	// Edit the draft while the request is in flight
	<-poster.started
	d.UpdateItem(0, draft.FieldQuantity, "999")
	close(poster.release)
	wg.Wait()

	require.Equal(t, 1, poster.calls())
	assert.Equal(t, 2, poster.requests[0].OrderItems[0].Quantity)
}

func TestDismiss(t *testing.T) {
	poster := &mockPoster{err: errors.New("boom")}
	ctrl := NewController(poster, validDraft(), nil, logger.New("error"))

	_, _ = ctrl.Submit(context.Background(), testCatalog())
	require.Equal(t, StatusFailed, ctrl.Status())

	ctrl.Dismiss()

	assert.Equal(t, StatusIdle, ctrl.Status())
	assert.Empty(t, ctrl.FailureMessage())
}

func TestDismiss_NoEffectWhileIdle(t *testing.T) {
	ctrl := NewController(&mockPoster{}, draft.New(), nil, logger.New("error"))

	ctrl.Dismiss()

	assert.Equal(t, StatusIdle, ctrl.Status())
}

func TestCancel(t *testing.T) {
	poster := &mockPoster{err: errors.New("boom")}
	d := validDraft()
	ctrl := NewController(poster, d, nil, logger.New("error"))

	_, _ = ctrl.Submit(context.Background(), testCatalog())
	require.Equal(t, StatusFailed, ctrl.Status())

	ctrl.Cancel()

	assert.Equal(t, StatusIdle, ctrl.Status())
	require.Equal(t, 1, d.Len())
	assert.Empty(t, d.Items()[0].ProductRef)
}

func TestSubmit_AfterFailureResubmits(t *testing.T) {
	poster := &mockPoster{err: errors.New("temporarily unavailable")}
	d := validDraft()
	ctrl := NewController(poster, d, nil, logger.New("error"))

	_, err := ctrl.Submit(context.Background(), testCatalog())
	require.Error(t, err)

	poster.err = nil
	poster.order = &models.Order{OrderNumber: "ORD-004"}

	order, err := ctrl.Submit(context.Background(), testCatalog())

	require.NoError(t, err)
	assert.Equal(t, "ORD-004", order.OrderNumber)
	assert.Equal(t, StatusSucceeded, ctrl.Status())
	assert.Equal(t, 2, poster.calls())
}
