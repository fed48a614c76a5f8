package flight

import (
	"context"
	"sort"
	"time"

	"einvite/pkg/dateutil"
	"einvite/pkg/idgen"
	"einvite/pkg/logger"
)

// FlightProvider is the external flight-data API the pipeline delegates to.
// Failures are opaque to the pipeline and reported uniformly.
type FlightProvider interface {
	SearchFlights(ctx context.Context, req SearchRequest) ([]Itinerary, error)
}

const (
	// Trips longer than discountSpanDays get discountRate off every itinerary.
	discountSpanDays = 10
	discountRate     = 0.10
)

type Service struct {
	provider FlightProvider
	ids      idgen.Generator
	now      func() time.Time
	logger   logger.Client
}

// NewService wires the pipeline. now is the clock used for past-date checks;
// nil means the system clock.
func NewService(provider FlightProvider, ids idgen.Generator, now func() time.Time, logger logger.Client) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		provider: provider,
		ids:      ids,
		now:      now,
		logger:   logger,
	}
}

// Search runs the pricing pipeline: validate dates, fetch itineraries from the
// provider, apply the long-trip discount, and return the results ordered by
// discounted price. It is stateless and safe for concurrent use; either a
// fully priced, fully sorted list is returned or an error, never partial
// results.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	departure, err := dateutil.Parse(req.DepartureDate, dateutil.LayoutDate)
	if err != nil {
		return nil, NewInvalidDateError(err)
	}

	returnDate, err := dateutil.Parse(req.ReturnDate, dateutil.LayoutDate)
	if err != nil {
		return nil, NewInvalidDateError(err)
	}

	now := s.now().UTC()
	if past, _ := dateutil.IsPast(departure, now); past {
		return nil, NewInvalidQueryError("departureDate must be in the future")
	}
	if past, _ := dateutil.IsPast(returnDate, now); past {
		return nil, NewInvalidQueryError("returnDate must be in the future")
	}
	if onOrBefore, _ := dateutil.IsOnOrBefore(returnDate, departure); onOrBefore {
		return nil, NewInvalidQueryError("returnDate must be after departureDate")
	}

	startTime := time.Now()
	itineraries, err := s.provider.SearchFlights(ctx, req)
	if err != nil {
		// Cause stays in the logs; the caller only sees the uniform message.
		s.logger.Error("flight provider call failed",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "route", Value: req.Origin + "->" + req.Destination},
		)
		return nil, NewUpstreamUnavailableError(err)
	}
	searchTime := time.Since(startTime).Milliseconds()

	tripDays, err := dateutil.DaysBetween(departure, returnDate)
	if err != nil {
		return nil, NewInvalidDateError(err)
	}

	discounted := tripDays > discountSpanDays
	if discounted {
		for i := range itineraries {
			if err := itineraries[i].ApplyDiscount(discountRate); err != nil {
				return nil, err
			}
		}
	}

	// Stable so equal prices keep the provider-supplied order.
	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].PriceAfterDiscount < itineraries[j].PriceAfterDiscount
	})

	searchID := s.ids.GenerateID()
	s.logger.Info("flight search completed",
		logger.Field{Key: "search_id", Value: searchID},
		logger.Field{Key: "results", Value: len(itineraries)},
		logger.Field{Key: "trip_days", Value: tripDays},
		logger.Field{Key: "discount_applied", Value: discounted},
	)

	return &SearchResponse{
		SearchCriteria: SearchCriteria{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
			ReturnDate:    req.ReturnDate,
		},
		Metadata: Metadata{
			SearchID:        searchID,
			TotalResults:    uint32(len(itineraries)),
			SearchTimeMs:    uint32(searchTime),
			DiscountApplied: discounted,
			TripDays:        tripDays,
		},
		Itineraries: itineraries,
	}, nil
}
