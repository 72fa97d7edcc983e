package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Bytefield/flight-booking-api/internal/config"
	"github.com/Bytefield/flight-booking-api/internal/flights"
	"github.com/Bytefield/flight-booking-api/internal/flightstore"
	"github.com/Bytefield/flight-booking-api/internal/logging"
)

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	store, err := flightstore.New(context.Background(), cfg.FlightsTable)
	if err != nil {
		log.Fatalw("failed to create flight store", "error", err)
	}

	lambda.Start(flights.NewHandler(store, log).Handle)
}
