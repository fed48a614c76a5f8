package flightclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"einvite/internal/flight"
	"einvite/pkg/logger"
)

// Client talks to the upstream flight-data API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL string, logger logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type searchResponse struct {
	Status      string         `json:"status"`
	Itineraries []itineraryDTO `json:"itineraries"`
}

type itineraryDTO struct {
	ID             string   `json:"id"`
	Legs           []legDTO `json:"legs"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
}

type legDTO struct {
	Departure       string       `json:"departure"`
	Arrival         string       `json:"arrival"`
	OriginCode      string       `json:"origin_code"`
	OriginName      string       `json:"origin_name"`
	DestinationCode string       `json:"destination_code"`
	DestinationName string       `json:"destination_name"`
	DurationMinutes uint32       `json:"duration_minutes"`
	Stops           uint32       `json:"stops"`
	Segments        []segmentDTO `json:"segments"`
}

type segmentDTO struct {
	Carrier         string `json:"carrier"`
	FlightNumber    string `json:"flight_number"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
}

// SearchFlights posts the raw query fields to the flight-data API and maps the
// payload into domain itineraries. The caller decides how failures surface.
func (c *Client) SearchFlights(ctx context.Context, req flight.SearchRequest) ([]flight.Itinerary, error) {
	url := fmt.Sprintf("%s/v1/flights/search", c.baseURL)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("flightclient: failed to marshal request: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("flightclient: failed to build request: %w", err)
	}

	r.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("flightclient: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("flight data api returned non-200",
			logger.Field{Key: "status", Value: resp.StatusCode},
		)
		return nil, fmt.Errorf("flightclient: external api returned non-200 status: %d", resp.StatusCode)
	}

	var apiResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("flightclient: failed to decode json response: %w", err)
	}

	return c.mapItineraries(apiResp), nil
}

func (c *Client) mapItineraries(resp searchResponse) []flight.Itinerary {
	mapped := make([]flight.Itinerary, 0, len(resp.Itineraries))

	for _, dto := range resp.Itineraries {
		legs := make([]flight.Leg, 0, len(dto.Legs))
		for _, l := range dto.Legs {
			depTime, _ := time.Parse(time.RFC3339, l.Departure)
			arrTime, _ := time.Parse(time.RFC3339, l.Arrival)

			segments := make([]flight.Segment, 0, len(l.Segments))
			for _, seg := range l.Segments {
				segDep, _ := time.Parse(time.RFC3339, seg.Departure)
				segArr, _ := time.Parse(time.RFC3339, seg.Arrival)

				segments = append(segments, flight.Segment{
					Carrier:         seg.Carrier,
					FlightNumber:    seg.FlightNumber,
					Departure:       segDep,
					Arrival:         segArr,
					OriginCode:      seg.OriginCode,
					DestinationCode: seg.DestinationCode,
				})
			}

			legs = append(legs, flight.Leg{
				Departure:       depTime,
				Arrival:         arrTime,
				OriginCode:      l.OriginCode,
				OriginName:      l.OriginName,
				DestinationCode: l.DestinationCode,
				DestinationName: l.DestinationName,
				DurationMinutes: l.DurationMinutes,
				Stops:           l.Stops,
				Segments:        segments,
			})
		}

		mapped = append(mapped, flight.NewItinerary(dto.ID, legs, dto.Price, dto.PriceFormatted))
	}

	return mapped
}
