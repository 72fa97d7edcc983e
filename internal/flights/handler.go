// Package flights routes flight read requests to the flights table.
//
// Endpoints:
//
//	GET /flights              - List all available flights
//	GET /flights/{flight_id}  - Get details of a specific flight
package flights

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Bytefield/flight-booking-api/internal/apigateway"
	"github.com/Bytefield/flight-booking-api/internal/flightstore"
)

// Reader is the store surface the flight handlers need.
type Reader interface {
	ListFlights(ctx context.Context) ([]flightstore.Record, error)
	GetFlight(ctx context.Context, flightID string) (flightstore.Record, error)
}

type Handler struct {
	store Reader
	log   *zap.SugaredLogger
}

func NewHandler(store Reader, log *zap.SugaredLogger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

type result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Handle routes a request by method and path. Unmatched routes answer 404.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.log.Infow("received event", "method", req.HTTPMethod, "path", req.Path)

	if req.HTTPMethod == http.MethodGet {
		if req.Path == "/flights" {
			return orNoData(h.listFlights(ctx, req), "No flights found"), nil
		}
		if strings.Contains(req.Path, "/flights/") {
			return orNoData(h.getFlight(ctx, req), "Flight not found"), nil
		}
	}

	return apigateway.Error(http.StatusNotFound, "Not found"), nil
}

// orNoData substitutes a plain-text 204 when an operation produced an empty
// response. Both operations always populate their response today, so this
// only matters if one is later changed to bail out with a zero value.
func orNoData(resp events.APIGatewayProxyResponse, msg string) events.APIGatewayProxyResponse {
	if resp.StatusCode == 0 {
		return apigateway.NoData(msg)
	}

	return resp
}

// listFlights returns every record in the table. The request is not used for
// filtering yet; it is kept for future query parameters.
func (h *Handler) listFlights(ctx context.Context, _ events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	records, err := h.store.ListFlights(ctx)
	if err != nil {
		h.log.Errorw("flight scan failed", "error", err)
		return apigateway.Error(http.StatusInternalServerError, err.Error())
	}

	if records == nil {
		records = []flightstore.Record{}
	}

	return apigateway.JSON(http.StatusOK, result{Success: true, Data: records})
}

// getFlight returns the single record whose flight_id matches the path
// parameter.
func (h *Handler) getFlight(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	flightID := req.PathParameters["flight_id"]
	if flightID == "" {
		return apigateway.Error(http.StatusBadRequest, "Missing flight_id")
	}

	record, err := h.store.GetFlight(ctx, flightID)
	if err != nil {
		h.log.Errorw("flight lookup failed", "flight_id", flightID, "error", err)
		return apigateway.Error(http.StatusInternalServerError, err.Error())
	}

	if record == nil {
		return apigateway.Error(http.StatusNotFound, "Flight not found")
	}

	return apigateway.JSON(http.StatusOK, result{Success: true, Data: record})
}
