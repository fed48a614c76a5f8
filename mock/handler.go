package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

type SearchResponse struct {
	Status      string      `json:"status"`
	Itineraries []Itinerary `json:"itineraries"`
}

type Itinerary struct {
	ID             string  `json:"id"`
	Legs           []Leg   `json:"legs"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
}

type Leg struct {
	Departure       string    `json:"departure"`
	Arrival         string    `json:"arrival"`
	OriginCode      string    `json:"origin_code"`
	OriginName      string    `json:"origin_name"`
	DestinationCode string    `json:"destination_code"`
	DestinationName string    `json:"destination_name"`
	DurationMinutes int       `json:"duration_minutes"`
	Stops           int       `json:"stops"`
	Segments        []Segment `json:"segments"`
}

type Segment struct {
	Carrier         string `json:"carrier"`
	FlightNumber    string `json:"flight_number"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
}

var carriers = []struct {
	Name   string
	Prefix string
}{
	{"Malaysia Airlines", "MH"},
	{"Singapore Airlines", "SQ"},
	{"AirAsia", "AK"},
	{"Scoot", "TR"},
}

func FlightSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	depDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		http.Error(w, "Invalid departure_date", http.StatusBadRequest)
		return
	}
	retDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		http.Error(w, "Invalid return_date", http.StatusBadRequest)
		return
	}

	itineraries := make([]Itinerary, 0, 4)
	for i, carrier := range carriers {
		price := float64(80 + rand.Intn(200))
		outNo := fmt.Sprintf("%s%d", carrier.Prefix, 100+rand.Intn(800))
		backNo := fmt.Sprintf("%s%d", carrier.Prefix, 100+rand.Intn(800))

		outDep := depDate.Add(time.Duration(7+i*3) * time.Hour)
		outArr := outDep.Add(95 * time.Minute)
		backDep := retDate.Add(time.Duration(9+i*2) * time.Hour)
		backArr := backDep.Add(95 * time.Minute)

		itineraries = append(itineraries, Itinerary{
			ID:             fmt.Sprintf("itin-%s-%04d", carrier.Prefix, rand.Intn(10000)),
			Price:          price,
			PriceFormatted: fmt.Sprintf("$%.0f", price),
			Legs: []Leg{
				makeLeg(carrier.Name, outNo, req.Origin, req.Destination, outDep, outArr),
				makeLeg(carrier.Name, backNo, req.Destination, req.Origin, backDep, backArr),
			},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SearchResponse{
		Status:      "success",
		Itineraries: itineraries,
	})
}

func makeLeg(carrier, flightNo, origin, destination string, dep, arr time.Time) Leg {
	return Leg{
		Departure:       dep.Format(time.RFC3339),
		Arrival:         arr.Format(time.RFC3339),
		OriginCode:      origin,
		OriginName:      origin + " International Airport",
		DestinationCode: destination,
		DestinationName: destination + " International Airport",
		DurationMinutes: int(arr.Sub(dep).Minutes()),
		Stops:           0,
		Segments: []Segment{
			{
				Carrier:         carrier,
				FlightNumber:    flightNo,
				Departure:       dep.Format(time.RFC3339),
				Arrival:         arr.Format(time.RFC3339),
				OriginCode:      origin,
				DestinationCode: destination,
			},
		},
	}
}
