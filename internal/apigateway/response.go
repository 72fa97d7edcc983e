// Package apigateway shapes API Gateway proxy responses shared by every
// function in this repository.
package apigateway

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

func standardHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// JSON encodes v and wraps it in a response carrying the standard JSON and
// CORS headers.
func JSON(status int, v interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return Error(http.StatusInternalServerError, err.Error())
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    standardHeaders(),
		Body:       string(body),
	}
}

// Error builds a {"error": msg} response. The message is passed through
// verbatim, without sanitization or classification.
func Error(status int, msg string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": msg})

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    standardHeaders(),
		Body:       string(body),
	}
}

// NoData is the plain-text 204 substituted when a handler produced no
// response at all. Callers must tolerate the non-JSON body.
func NoData(msg string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Body:       msg,
	}
}
