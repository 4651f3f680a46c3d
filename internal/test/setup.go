package test

import (
	"log"
	"net/http"
	"testing"

	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/server"
)

func Setup(t *testing.T) *server.App {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	t.Setenv("TALLY_DATA_PATH", t.TempDir())
	t.Setenv("TALLY_ENV", config.EnvTest)

	app, err := server.NewApp(config.NewConfig(), http.NewServeMux())

	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	return app
}

// RunWithApp runs a test callback against an initialized app without starting
// an HTTP listener.
func RunWithApp(t *testing.T, callback func(app *server.App)) {
	app := Setup(t)

	callback(app)

	err := app.Shutdown()

	if err != nil {
		t.Fatalf("failed to shut down app: %v", err)
	}
}
