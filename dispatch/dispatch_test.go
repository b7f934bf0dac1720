package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/client"
	"tourdesk/dehydrate"
	"tourdesk/form"
	"tourdesk/models"
)

func formValue() form.TourForm {
	return form.TourForm{Title: "Everest Base Camp", TourStatus: "draft"}
}

type fakeAPI struct {
	mu      sync.Mutex
	creates int
	updates int
	block   chan struct{}
	err     error
}

func (f *fakeAPI) CreateTour(ctx context.Context, p dehydrate.Payload) (*models.Tour, error) {
	f.mu.Lock()
	f.creates++
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Tour{TourID: "t-created"}, nil
}

func (f *fakeAPI) UpdateTour(ctx context.Context, id string, p dehydrate.Payload) (*models.Tour, error) {
	f.mu.Lock()
	f.updates++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &models.Tour{TourID: id}, nil
}

type fakeCache struct {
	calls [][2]string
}

func (f *fakeCache) Invalidate(ctx context.Context, userID, tourID string) error {
	f.calls = append(f.calls, [2]string{userID, tourID})
	return nil
}

func TestCreateVsUpdateRouting(t *testing.T) {
	api := &fakeAPI{}
	cache := &fakeCache{}
	d := New(api, cache, "u1", nil)

	p, err := dehydrate.FullPayload(formValue())
	require.NoError(t, err)

	tour, err := d.Submit(context.Background(), "", p)
	require.NoError(t, err)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 0, api.updates)
	assert.Equal(t, "t-created", tour.TourID)

	_, err = d.Submit(context.Background(), "t9", p)
	require.NoError(t, err)
	assert.Equal(t, 1, api.updates)
}

func TestInvalidationAfterSuccess(t *testing.T) {
	api := &fakeAPI{}
	cache := &fakeCache{}
	d := New(api, cache, "u1", nil)

	p, _ := dehydrate.FullPayload(formValue())
	_, err := d.Submit(context.Background(), "", p)
	require.NoError(t, err)

	require.Len(t, cache.calls, 1)
	assert.Equal(t, "u1", cache.calls[0][0])
	assert.Equal(t, "t-created", cache.calls[0][1], "freshly created id is invalidated")
}

func TestNoInvalidationOnFailure(t *testing.T) {
	api := &fakeAPI{err: &client.APIError{StatusCode: 400, Message: "bad pricing"}}
	cache := &fakeCache{}
	d := New(api, cache, "u1", nil)

	p, _ := dehydrate.FullPayload(formValue())
	_, err := d.Submit(context.Background(), "", p)
	require.Error(t, err)
	assert.Empty(t, cache.calls)
}

func TestSingleFlightGuard(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	d := New(api, nil, "u1", nil)

	p, _ := dehydrate.FullPayload(formValue())

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Submit(context.Background(), "", p) //nolint:errcheck
	}()

	// wait for the first submit to be in flight
	require.Eventually(t, func() bool {
		api.mu.Lock()
		defer api.mu.Unlock()
		return api.creates == 1
	}, time.Second, 5*time.Millisecond)

	_, err := d.Submit(context.Background(), "", p)
	assert.ErrorIs(t, err, ErrSubmitting)

	close(api.block)
	<-done

	// settled: a new submit is possible again
	_, err = d.Submit(context.Background(), "", p)
	assert.NoError(t, err)
}

func TestMessagePriority(t *testing.T) {
	assert.Equal(t, "bad pricing",
		Message(&client.APIError{StatusCode: 400, Message: "bad pricing"}))
	assert.Equal(t, "a submission is already in progress", Message(ErrSubmitting))
	assert.Contains(t, Message(assert.AnError), "request failed")
	assert.Equal(t, "", Message(nil))
}
