package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Bytefield/flight-booking-api/internal/logging"
	"github.com/Bytefield/flight-booking-api/internal/stub"
)

func main() {
	log := logging.New()

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		log.Infow("received event", "method", req.HTTPMethod, "path", req.Path)
		return stub.Users(req), nil
	})
}
