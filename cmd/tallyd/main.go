package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/tallyhq/tally/pkg/config"
	"github.com/tallyhq/tally/pkg/server"
)

var app *server.App

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	godotenv.Load(".env")

	configInstance := config.NewConfig()

	if err := configInstance.Validate(); err != nil {
		log.Fatalf("Config: %v", err)
	}

	err := server.NewServer(configInstance).Start(
		// Start hook
		func(serveMux *http.ServeMux) error {
			var err error

			app, err = server.NewApp(configInstance, serveMux)

			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
		// Shutdown hook
		func() {
			if app == nil {
				return
			}

			if err := app.Shutdown(); err != nil {
				log.Printf("Shutdown: %v", err)
			}
		},
	)

	if err != nil {
		log.Fatalf("Server: %v", err)
	}
}
