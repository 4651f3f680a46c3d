package http

import (
	"net/http"
)

// ErrorResponse returns a JSON error body with the given fixed message. The
// counter endpoints report storage failures with exact messages, so the error
// text is passed through untouched.
func ErrorResponse(message string, statusCode int) Response {
	return JsonResponse(map[string]any{
		"error": message,
	}, statusCode, nil)
}

// NotFoundResponse is the plain-text fallback for unmatched routes.
func NotFoundResponse() Response {
	return Response{
		StatusCode: 404,
		Stream: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(404)
			w.Write([]byte("Not Found"))
		},
	}
}
