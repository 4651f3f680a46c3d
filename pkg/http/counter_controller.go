package http

import (
	"log/slog"
)

// Return the current counter value.
func CounterShowController(request *Request) Response {
	value, err := request.counter.Read(request.BaseRequest.Context())

	if err != nil {
		slog.Error("Failed to retrieve counter value", "error", err)

		return ErrorResponse("Failed to retrieve counter value.", 500)
	}

	return ValueResponse(value)
}

// Increment the counter and return the new value. The request body is
// ignored.
func CounterIncrementController(request *Request) Response {
	value, err := request.counter.Increment(request.BaseRequest.Context())

	if err != nil {
		slog.Error("Failed to increment counter value", "error", err)

		return ErrorResponse("Failed to increment counter value.", 500)
	}

	return ValueResponse(value)
}
