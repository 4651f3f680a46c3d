package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/counter"
)

type Router struct {
	DefaultRoute     Route
	GlobalMiddleware []Middleware
	Routes           map[string]map[string]*Route
}

// Create a new Router instance
func NewRouter() *Router {
	return &Router{
		GlobalMiddleware: []Middleware{
			LogRequest,
		},
		Routes: map[string]map[string]*Route{
			"GET":    nil,
			"POST":   nil,
			"PUT":    nil,
			"PATCH":  nil,
			"DELETE": nil,
		},
	}
}

// Add a DELETE route to the router
func (router *Router) Delete(path string, handler func(request *Request) Response) *Route {
	return router.request("DELETE", path, handler)
}

// Set the Fallback route to the router
func (router *Router) Fallback(callback func(request *Request) Response) {
	router.DefaultRoute = Route{
		Handler: callback,
		router:  router,
		timeout: 0,
	}
}

// Add a GET route on the router
func (router *Router) Get(path string, handler func(request *Request) Response) *Route {
	return router.request("GET", path, handler)
}

// Add a PATCH route to the router
func (router *Router) Patch(path string, handler func(request *Request) Response) *Route {
	return router.request("PATCH", path, handler)
}

// Add a POST route to the router
func (router *Router) Post(path string, handler func(request *Request) Response) *Route {
	return router.request("POST", path, handler)
}

// Add a PUT route to the router
func (router *Router) Put(path string, handler func(request *Request) Response) *Route {
	return router.request("PUT", path, handler)
}

// Register a route on the Router for the given method and path
func (router *Router) request(method string, path string, handler func(request *Request) Response) *Route {
	if router.Routes[method] == nil {
		router.Routes[method] = make(map[string]*Route)
	}

	if path != "/{$}" {
		path = strings.TrimRight(path, "/")
	}

	router.Routes[method][path] = NewRoute(router, handler)

	return router.Routes[method][path]
}

// Create a server handler for the Router.
func (router *Router) Server(
	configInstance *config.Config,
	counterService *counter.Service,
	serveMux *http.ServeMux,
) {
	LoadRoutes(router)

	serveMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response := router.DefaultRoute.Handler(
			NewRequest(configInstance, counterService, r),
		)

		writeResponse(w, r, response)
	})

	for method := range router.Routes {
		for path, route := range router.Routes[method] {
			serveMux.HandleFunc(fmt.Sprintf("%s %s", method, path), func(w http.ResponseWriter, r *http.Request) {
				response := route.Handle(NewRequest(configInstance, counterService, r))

				if response.StatusCode == 0 {
					return
				}

				writeResponse(w, r, response)
			})
		}
	}
}

// Write a Response to the underlying ResponseWriter. Stream responses take
// over the writer entirely, everything else is serialized as JSON.
func writeResponse(w http.ResponseWriter, r *http.Request, response Response) {
	if response.Stream != nil {
		response.Stream(w)
		return
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	if response.StatusCode >= 400 {
		w.Header().Set("Connection", "close")
	}

	if response.StatusCode == 204 {
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(response.StatusCode)
		return
	}

	if response.Body == nil {
		w.WriteHeader(response.StatusCode)

		_, err := w.Write([]byte(""))

		if err != nil {
			slog.Error("Error writing empty response", "error", err)
		}

		return
	}

	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(response.StatusCode)

		gw := gzip.NewWriter(w)
		defer gw.Close()

		err := json.NewEncoder(gw).Encode(response.Body)

		if err != nil {
			panic(err)
		}

		return
	}

	jsonBody, err := json.Marshal(response.Body)

	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(jsonBody)))
	w.WriteHeader(response.StatusCode)

	_, err = w.Write(jsonBody)

	if err != nil {
		slog.Error("Error writing response", "error", err)
	}
}
