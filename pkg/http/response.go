package http

import (
	"maps"
	"net/http"
)

type Response struct {
	StatusCode int `json:"statusCode"`
	Stream     func(http.ResponseWriter)
	Headers    map[string]string `json:"headers"`
	Body       map[string]any    `json:"body"`
}

func JsonResponse(body map[string]any, statusCode int, headers map[string]string) Response {
	responseHeaders := make(map[string]string, len(headers)+1)
	responseHeaders["Content-Type"] = "application/json"

	maps.Copy(responseHeaders, headers)

	return Response{
		StatusCode: statusCode,
		Headers:    responseHeaders,
		Body:       body,
	}
}

// ValueResponse is the success payload of both counter endpoints.
func ValueResponse(value int64) Response {
	return JsonResponse(map[string]any{
		"value": value,
	}, 200, nil)
}

func (r Response) IsEmpty() bool {
	return r.StatusCode == 0 && r.Stream == nil && len(r.Headers) == 0 && r.Body == nil
}
