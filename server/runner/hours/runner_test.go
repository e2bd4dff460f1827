package hours

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellboyz13/mrtfood/store"
)

// fakeStore implements Store over an in-memory place list.
type fakeStore struct {
	places      []*store.Place
	failUpdates map[int32]bool
}

func (f *fakeStore) ListPlaces(_ context.Context, find *store.FindPlace) ([]*store.Place, error) {
	var pending []*store.Place
	for _, p := range f.places {
		if find.HoursPending != nil && *find.HoursPending {
			if p.RawHours == nil || p.Hours != nil {
				continue
			}
		}
		pending = append(pending, p)
	}
	offset := 0
	if find.Offset != nil {
		offset = *find.Offset
	}
	if offset >= len(pending) {
		return nil, nil
	}
	pending = pending[offset:]
	if find.Limit != nil && len(pending) > *find.Limit {
		pending = pending[:*find.Limit]
	}
	return pending, nil
}

func (f *fakeStore) UpdatePlace(_ context.Context, update *store.UpdatePlace) error {
	if f.failUpdates[update.ID] {
		return errors.New("write failed")
	}
	for _, p := range f.places {
		if p.ID == update.ID {
			if update.Hours != nil {
				p.Hours = update.Hours
			}
			return nil
		}
	}
	return errors.Errorf("place %d not found", update.ID)
}

func strPtr(s string) *string { return &s }

func TestRunOnce(t *testing.T) {
	fs := &fakeStore{
		places: []*store.Place{
			{ID: 1, UID: "p1", RawHours: strPtr("Daily 9am - 10pm")},
			{ID: 2, UID: "p2", RawHours: strPtr("gibberish not a time")},
			{ID: 3, UID: "p3", RawHours: strPtr("24 hours")},
			{ID: 4, UID: "p4"}, // no raw hours, not a candidate
		},
	}

	report, err := NewRunner(fs).RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Converted)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.UnparsedExamples, 1)
	assert.Equal(t, "p2", report.UnparsedExamples[0].UID)
	assert.Equal(t, "gibberish not a time", report.UnparsedExamples[0].RawHours)

	// Converted places now carry a schedule; the raw string is kept.
	assert.NotNil(t, fs.places[0].Hours)
	assert.NotNil(t, fs.places[0].RawHours)
	assert.Nil(t, fs.places[1].Hours)
}

func TestRunOnceIdempotent(t *testing.T) {
	fs := &fakeStore{
		places: []*store.Place{
			{ID: 1, UID: "p1", RawHours: strPtr("Daily 9am - 10pm")},
			{ID: 2, UID: "p2", RawHours: strPtr("not hours")},
		},
	}
	runner := NewRunner(fs)

	first, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Converted)
	assert.Equal(t, 1, first.Skipped)

	// A second run sees no new convertible records and the same skips.
	second, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Converted)
	assert.Equal(t, 1, second.Skipped)
}

func TestRunOnceWriteFailureIsolated(t *testing.T) {
	fs := &fakeStore{
		places: []*store.Place{
			{ID: 1, UID: "p1", RawHours: strPtr("Daily 9am - 10pm")},
			{ID: 2, UID: "p2", RawHours: strPtr("Daily 8am - 5pm")},
		},
		failUpdates: map[int32]bool{1: true},
	}

	report, err := NewRunner(fs).RunOnce(context.Background())
	require.NoError(t, err)

	// The failed write counts as a skip, not a conversion, and does not
	// abort the rest of the batch.
	assert.Equal(t, 1, report.Converted)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, report.UnparsedExamples)
	assert.NotNil(t, fs.places[1].Hours)
}

func TestRunOnceExampleCap(t *testing.T) {
	fs := &fakeStore{}
	for i := 0; i < maxUnparsedExamples+10; i++ {
		fs.places = append(fs.places, &store.Place{
			ID:       int32(i + 1),
			UID:      fmt.Sprintf("p%d", i+1),
			RawHours: strPtr(fmt.Sprintf("mystery format %d", i)),
		})
	}

	report, err := NewRunner(fs).RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, maxUnparsedExamples+10, report.Skipped)
	assert.Len(t, report.UnparsedExamples, maxUnparsedExamples)
}
