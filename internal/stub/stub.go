// Package stub holds the fixed responses for endpoints that exist only as
// placeholders. Each echoes the request it received and always answers 501.
package stub

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Bytefield/flight-booking-api/internal/apigateway"
)

type body struct {
	Message        string `json:"message"`
	ReceivedPath   string `json:"received_path"`
	ReceivedMethod string `json:"received_method"`
	HasAuthHeader  *bool  `json:"has_auth_header,omitempty"`
	Note           string `json:"note,omitempty"`
}

// Auth covers POST /auth/register and POST /auth/login.
func Auth(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return apigateway.JSON(http.StatusNotImplemented, body{
		Message:        "Auth endpoint not implemented yet",
		ReceivedPath:   req.Path,
		ReceivedMethod: req.HTTPMethod,
	})
}

// Bookings covers POST /bookings, GET /bookings and DELETE /bookings/{id}.
func Bookings(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return apigateway.JSON(http.StatusNotImplemented, body{
		Message:        "Bookings endpoint not implemented yet",
		ReceivedPath:   req.Path,
		ReceivedMethod: req.HTTPMethod,
		Note:           "Will handle: create booking, list bookings, cancel booking",
	})
}

// Users covers GET /users/me. It reports whether an Authorization header was
// present even though nothing reads it yet.
func Users(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	hasAuthHeader := hasAuthorizationHeader(req.Headers)

	return apigateway.JSON(http.StatusNotImplemented, body{
		Message:        "Users endpoint not implemented yet",
		ReceivedPath:   req.Path,
		ReceivedMethod: req.HTTPMethod,
		HasAuthHeader:  &hasAuthHeader,
		Note:           "Will return user profile based on JWT token",
	})
}

// API Gateway does not canonicalize header casing, so check both spellings.
func hasAuthorizationHeader(headers map[string]string) bool {
	return headers["Authorization"] != "" || headers["authorization"] != ""
}
