package http

import (
	"net/http"

	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/counter"
)

// Request bodies are never parsed here: neither counter endpoint accepts
// input, so the increment body is ignored by construction.
type Request struct {
	BaseRequest *http.Request
	config      *config.Config
	counter     *counter.Service
	headers     Headers
	Method      string
	QueryParams map[string]string
	Route       Route
}

// Create a new Request instance.
func NewRequest(
	configInstance *config.Config,
	counterService *counter.Service,
	request *http.Request,
) *Request {
	headers := make(map[string]string, len(request.Header))

	for key, value := range request.Header {
		headers[key] = value[0]
	}

	headers["host"] = request.Host

	queryParams := make(map[string]string, len(request.URL.Query()))

	for key, value := range request.URL.Query() {
		queryParams[key] = value[0]
	}

	return &Request{
		BaseRequest: request,
		config:      configInstance,
		counter:     counterService,
		headers:     NewHeaders(headers),
		Method:      request.Method,
		QueryParams: queryParams,
	}
}

// Return the headers for the request.
func (request *Request) Headers() Headers {
	return request.headers
}

// Return a route parameter for the request by its key.
func (request *Request) Param(key string) string {
	return request.BaseRequest.PathValue(key)
}

// Return the path of the request.
func (request *Request) Path() string {
	return request.BaseRequest.URL.Path
}

// Return a query parameter from the request by its key.
func (request *Request) QueryParam(key string, defaultValue ...string) string {
	value := request.QueryParams[key]

	if value == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return value
}
