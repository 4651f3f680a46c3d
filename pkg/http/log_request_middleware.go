package http

import (
	"log/slog"
)

func LogRequest(request *Request) (*Request, Response) {
	if request.config.Debug {
		slog.Debug("Request received", "method", request.Method, "path", request.Path())
	}

	return request, Response{}
}
