package http_test

import (
	"net/http"
	"runtime"
	"testing"
	"time"

	appHttp "github.com/tallyhq/tally/pkg/http"
)

func TestNewRoute(t *testing.T) {
	router := appHttp.NewRouter()

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		return appHttp.Response{}
	})

	if route == nil {
		t.Fatal("Failed to create route")
	}
}

func TestRoute_Handle(t *testing.T) {
	router := appHttp.NewRouter()
	var handleCalled bool

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		handleCalled = true
		return appHttp.Response{}
	})

	req, _ := http.NewRequest("GET", "/", nil)

	resp := route.Handle(&appHttp.Request{
		BaseRequest: req,
	})

	if resp.StatusCode != 0 {
		t.Fatalf("expected status code 0, got %d", resp.StatusCode)
	}

	if !handleCalled {
		t.Fatal("expected handler to be called")
	}
}

func TestRoute_Middleware(t *testing.T) {
	router := appHttp.NewRouter()
	var middlewareCalled bool

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		return appHttp.Response{}
	}).Middleware([]appHttp.Middleware{
		func(request *appHttp.Request) (newRequest *appHttp.Request, response appHttp.Response) {
			middlewareCalled = true
			return request, appHttp.Response{}
		},
	})

	req, _ := http.NewRequest("GET", "/", nil)

	resp := route.Handle(&appHttp.Request{
		BaseRequest: req,
	})

	if resp.StatusCode != 0 {
		t.Fatalf("expected status code 0, got %d", resp.StatusCode)
	}

	if !middlewareCalled {
		t.Fatal("expected middleware to be called")
	}
}

func TestRoute_MiddlewareShortCircuits(t *testing.T) {
	router := appHttp.NewRouter()
	var handleCalled bool

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		handleCalled = true
		return appHttp.Response{}
	}).Middleware([]appHttp.Middleware{
		func(request *appHttp.Request) (*appHttp.Request, appHttp.Response) {
			return request, appHttp.ErrorResponse("Not Found", 404)
		},
	})

	req, _ := http.NewRequest("GET", "/", nil)

	resp := route.Handle(&appHttp.Request{
		BaseRequest: req,
	})

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status code 404, got %d", resp.StatusCode)
	}

	if handleCalled {
		t.Fatal("expected handler to be skipped")
	}
}

func TestRoute_Timeout(t *testing.T) {
	router := appHttp.NewRouter()

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		time.Sleep(10 * time.Millisecond)
		return appHttp.Response{}
	}).Timeout(5 * time.Millisecond)

	req, _ := http.NewRequest("GET", "/", nil)

	resp := route.Handle(&appHttp.Request{
		BaseRequest: req,
	})

	if resp.StatusCode != http.StatusRequestTimeout {
		t.Fatalf("expected status code %d, got %d", http.StatusRequestTimeout, resp.StatusCode)
	}

	if resp.Body["error"] != "Request timed out." {
		t.Fatalf("expected the error envelope, got %v", resp.Body)
	}
}

func TestRoute_TimeoutDoesNotLeakHandlers(t *testing.T) {
	router := appHttp.NewRouter()

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		time.Sleep(10 * time.Millisecond)
		return appHttp.Response{StatusCode: http.StatusOK}
	}).Timeout(5 * time.Millisecond)

	req, _ := http.NewRequest("GET", "/", nil)

	before := runtime.NumGoroutine()

	const requests = 20

	for i := 0; i < requests; i++ {
		resp := route.Handle(&appHttp.Request{
			BaseRequest: req,
		})

		if resp.StatusCode != http.StatusRequestTimeout {
			t.Fatalf("expected status code %d, got %d", http.StatusRequestTimeout, resp.StatusCode)
		}
	}

	// Give the timed-out handlers time to finish and exit.
	time.Sleep(100 * time.Millisecond)

	after := runtime.NumGoroutine()

	if after >= before+requests {
		t.Fatalf("expected handler goroutines to exit, %d leaked", after-before)
	}
}

func TestRoute_TimeoutDisabled(t *testing.T) {
	router := appHttp.NewRouter()

	router.GlobalMiddleware = []appHttp.Middleware{}

	route := appHttp.NewRoute(router, func(request *appHttp.Request) appHttp.Response {
		return appHttp.Response{StatusCode: http.StatusOK}
	}).Timeout(0)

	req, _ := http.NewRequest("GET", "/", nil)

	resp := route.Handle(&appHttp.Request{
		BaseRequest: req,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status code 200, got %d", resp.StatusCode)
	}
}
