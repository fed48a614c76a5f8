package flight

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"einvite/pkg/logger"
)

type stubProvider struct {
	itineraries []Itinerary
	err         error
	calls       int
}

func (p *stubProvider) SearchFlights(ctx context.Context, req SearchRequest) ([]Itinerary, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	// Hand out a copy so tests can compare against the originals.
	out := make([]Itinerary, len(p.itineraries))
	copy(out, p.itineraries)
	return out, nil
}

type stubIDs struct{}

func (stubIDs) GenerateID() string { return "search-1" }

// fixedNow is well before the query dates used throughout the tests.
func fixedNow() time.Time {
	return time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(p *stubProvider) *Service {
	return NewService(p, stubIDs{}, fixedNow, logger.NewWithWriter("development", &bytes.Buffer{}))
}

func validRequest() SearchRequest {
	return SearchRequest{
		Origin:        "KUL",
		OriginID:      "1",
		Destination:   "SIN",
		DestinationID: "2",
		DepartureDate: "2025-05-01",
		ReturnDate:    "2025-05-20", // 19-day trip
	}
}

func TestSearch_LongTripAppliesDiscount(t *testing.T) {
	provider := &stubProvider{itineraries: []Itinerary{
		NewItinerary("itin-a", nil, 100, "$100"),
		NewItinerary("itin-b", nil, 80, "$80"),
	}}
	svc := newTestService(provider)

	resp, err := svc.Search(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 2)

	// Cheapest discounted price first.
	assert.Equal(t, "itin-b", resp.Itineraries[0].ID)
	assert.InDelta(t, 72.0, resp.Itineraries[0].PriceAfterDiscount, 1e-9)
	assert.Equal(t, "$72", resp.Itineraries[0].PriceAfterDiscountFormatted)

	assert.Equal(t, "itin-a", resp.Itineraries[1].ID)
	assert.InDelta(t, 90.0, resp.Itineraries[1].PriceAfterDiscount, 1e-9)
	assert.Equal(t, "$90", resp.Itineraries[1].PriceAfterDiscountFormatted)

	assert.True(t, resp.Metadata.DiscountApplied)
	assert.Equal(t, 19.0, resp.Metadata.TripDays)
	assert.Equal(t, "search-1", resp.Metadata.SearchID)
	assert.Equal(t, uint32(2), resp.Metadata.TotalResults)
}

func TestSearch_ShortTripNoDiscount(t *testing.T) {
	provider := &stubProvider{itineraries: []Itinerary{
		NewItinerary("itin-a", nil, 100, "$100"),
		NewItinerary("itin-b", nil, 80, "$80"),
	}}
	svc := newTestService(provider)

	req := validRequest()
	req.ReturnDate = "2025-05-05" // 4-day trip

	resp, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Itineraries, 2)

	assert.Equal(t, 80.0, resp.Itineraries[0].PriceAfterDiscount)
	assert.Equal(t, 100.0, resp.Itineraries[1].PriceAfterDiscount)
	assert.False(t, resp.Metadata.DiscountApplied)
}

func TestSearch_ExactTenDaySpanNoDiscount(t *testing.T) {
	provider := &stubProvider{itineraries: []Itinerary{
		NewItinerary("itin-a", nil, 100, "$100"),
	}}
	svc := newTestService(provider)

	req := validRequest()
	req.ReturnDate = "2025-05-11" // exactly 10 days; discount needs strictly more

	resp, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Metadata.DiscountApplied)
	assert.Equal(t, 100.0, resp.Itineraries[0].PriceAfterDiscount)
}

func TestSearch_StableSortKeepsProviderOrderOnTies(t *testing.T) {
	provider := &stubProvider{itineraries: []Itinerary{
		NewItinerary("itin-a", nil, 120, "$120"),
		NewItinerary("itin-b", nil, 120, "$120"),
		NewItinerary("itin-c", nil, 95, "$95"),
		NewItinerary("itin-d", nil, 120, "$120"),
	}}
	svc := newTestService(provider)

	resp, err := svc.Search(context.Background(), validRequest())
	require.NoError(t, err)

	ids := make([]string, 0, len(resp.Itineraries))
	for _, it := range resp.Itineraries {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"itin-c", "itin-a", "itin-b", "itin-d"}, ids)
}

func TestSearch_InvalidDateFormat(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)

	req := validRequest()
	req.DepartureDate = "2024-13-45"

	_, err := svc.Search(context.Background(), req)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeInvalidDate, appErr.Code)
	assert.Zero(t, provider.calls, "provider must not be called on validation failure")
}

func TestSearch_ValidationOrderAndMessages(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*SearchRequest)
		message string
	}{
		{
			name:    "departure in the past",
			modify:  func(r *SearchRequest) { r.DepartureDate = "2025-04-01" },
			message: "departureDate must be in the future",
		},
		{
			name: "return in the past",
			modify: func(r *SearchRequest) {
				r.DepartureDate = "2025-05-01"
				r.ReturnDate = "2025-04-01"
			},
			message: "returnDate must be in the future",
		},
		{
			name:    "return before departure",
			modify:  func(r *SearchRequest) { r.ReturnDate = "2025-04-25" },
			message: "returnDate must be after departureDate",
		},
		{
			name:    "return equals departure",
			modify:  func(r *SearchRequest) { r.ReturnDate = "2025-05-01" },
			message: "returnDate must be after departureDate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{}
			svc := newTestService(provider)

			req := validRequest()
			tc.modify(&req)

			_, err := svc.Search(context.Background(), req)

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, ErrorCodeInvalidQuery, appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
			assert.Zero(t, provider.calls)
		})
	}
}

func TestSearch_ProviderFailureIsWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	provider := &stubProvider{err: cause}
	svc := newTestService(provider)

	_, err := svc.Search(context.Background(), validRequest())

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeUpstreamUnavailable, appErr.Code)
	assert.Equal(t, "Flight data service is not available", appErr.Message)
	assert.NotContains(t, appErr.Message, "connection refused", "upstream cause must not leak")
	assert.True(t, errors.Is(err, cause), "cause must stay reachable for diagnostics")
}

func TestSearch_EmptyProviderResult(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)

	resp, err := svc.Search(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Itineraries)
	assert.Equal(t, uint32(0), resp.Metadata.TotalResults)
}
