package server

import (
	"fmt"

	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/counter"
	"github.com/tallyhq/tally/pkg/http"
	"github.com/tallyhq/tally/pkg/storage"

	netHttp "net/http"
)

type App struct {
	initialized bool
	Config      *config.Config
	Counter     *counter.Service
	ServeMux    *netHttp.ServeMux
	Store       *storage.Store
}

// NewApp opens the store and wires the counter service together. A storage
// failure here is fatal: the process must not begin serving without a usable
// store.
func NewApp(configInstance *config.Config, serveMux *netHttp.ServeMux) (*App, error) {
	store, err := storage.Open(configInstance.DatabasePath())

	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	app := &App{
		Config:   configInstance,
		Counter:  counter.NewService(store),
		ServeMux: serveMux,
		Store:    store,
	}

	app.initialized = true

	return app, nil
}

func (app *App) IsInitialized() bool {
	return app.initialized
}

func (app *App) Run() {
	http.NewRouter().Server(app.Config, app.Counter, app.ServeMux)
}

func (app *App) Shutdown() error {
	return app.Store.Close()
}
