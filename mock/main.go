package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

type SearchRequest struct {
	Origin        string `json:"origin"`
	OriginID      string `json:"origin_id"`
	Destination   string `json:"destination"`
	DestinationID string `json:"destination_id"`
	DepartureDate string `json:"departure_date"` // Format: YYYY-MM-DD
	ReturnDate    string `json:"return_date"`    // Format: YYYY-MM-DD
}

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/v1/flights/search", FlightSearchHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Flight data mock server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
