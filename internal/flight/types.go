package flight

import "time"

type ErrorCode string

const (
	ErrorCodeValidation           ErrorCode = "VALIDATION"
	ErrorCodeInvalidDate          ErrorCode = "INVALID_DATE"
	ErrorCodeInvalidQuery         ErrorCode = "INVALID_QUERY"
	ErrorCodeUpstreamUnavailable  ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrorCodeDiscountRateExceeded ErrorCode = "DISCOUNT_RATE_EXCEEDED"
	ErrorCodeInternalFailure      ErrorCode = "INTERNAL_FAILURE"
)

// SearchRequest carries the six raw query fields. Dates are yyyy-MM-dd strings;
// the identifiers are opaque and passed to the provider unmodified.
type SearchRequest struct {
	Origin        string `json:"origin" binding:"required"`
	OriginID      string `json:"origin_id" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
	ReturnDate    string `json:"return_date" binding:"required"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Itineraries    []Itinerary    `json:"itineraries"`
}

type SearchCriteria struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

type Metadata struct {
	SearchID        string  `json:"search_id"`
	TotalResults    uint32  `json:"total_results"`
	SearchTimeMs    uint32  `json:"search_time_ms,omitempty"`
	DiscountApplied bool    `json:"discount_applied"`
	TripDays        float64 `json:"trip_days"`
}

// Itinerary is one priced flight search result. It lives only for the duration
// of a single request/response cycle; nothing is persisted.
type Itinerary struct {
	ID                          string  `json:"id"`
	Legs                        []Leg   `json:"legs"`
	Price                       float64 `json:"price"`
	PriceFormatted              string  `json:"price_formatted"`
	PriceAfterDiscount          float64 `json:"price_after_discount"`
	PriceAfterDiscountFormatted string  `json:"price_after_discount_formatted"`
}

// Leg is one directional trip between an origin and a destination,
// possibly with stops.
type Leg struct {
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	OriginCode      string    `json:"origin_code"`
	OriginName      string    `json:"origin_name"`
	DestinationCode string    `json:"destination_code"`
	DestinationName string    `json:"destination_name"`
	DurationMinutes uint32    `json:"duration_minutes"`
	Stops           uint32    `json:"stops"`
	Segments        []Segment `json:"segments"`
}

// Segment is one non-stop hop within a leg, flown by a single carrier.
type Segment struct {
	Carrier         string    `json:"carrier"`
	FlightNumber    string    `json:"flight_number"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	OriginCode      string    `json:"origin_code"`
	DestinationCode string    `json:"destination_code"`
}
