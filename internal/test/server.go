package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/server"
)

type TestServer struct {
	Address string
	App     *server.App
	Port    string
	Server  *httptest.Server
}

/*
NewTestServer creates a new test server with a fully initialized app backed by
a temporary data directory.
*/
func NewTestServer(t *testing.T) *TestServer {
	serveMux := http.NewServeMux()
	ts := httptest.NewServer(serveMux)
	port := ts.URL[len(ts.URL)-5:]

	t.Setenv("TALLY_PORT", port)
	t.Setenv("TALLY_DATA_PATH", t.TempDir())
	t.Setenv("TALLY_ENV", config.EnvTest)

	configInstance := config.NewConfig()

	app, err := server.NewApp(configInstance, serveMux)

	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	app.Run()

	testServer := &TestServer{
		Address: ts.URL,
		App:     app,
		Port:    port,
		Server:  ts,
	}

	t.Cleanup(func() {
		testServer.Shutdown()
	})

	return testServer
}

func (ts *TestServer) Shutdown() {
	ts.Server.Close()
	ts.App.Shutdown()
}
