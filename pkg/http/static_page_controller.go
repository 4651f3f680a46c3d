package http

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
)

//go:embed public/index.html
var indexHTML []byte

// Serve the counter page.
func StaticPageController(request *Request) Response {
	return Response{
		StatusCode: 200,
		Stream: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Content-Length", fmt.Sprintf("%d", len(indexHTML)))
			w.WriteHeader(200)

			_, err := w.Write(indexHTML)

			if err != nil {
				slog.Error("Error writing page response", "error", err)
			}
		},
	}
}
