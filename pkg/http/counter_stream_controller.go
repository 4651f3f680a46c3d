package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Stream counter value changes over a websocket. The current value is sent
// immediately after the upgrade, then every change until the client goes
// away. The static page does not depend on this endpoint; it exists for
// clients that want push updates instead of polling.
func CounterStreamController(request *Request) Response {
	return Response{
		StatusCode: 200,
		Stream: func(w http.ResponseWriter) {
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
			}

			conn, err := upgrader.Upgrade(w, request.BaseRequest, nil)

			if err != nil {
				slog.Error("Error upgrading to websocket", "error", err)
				return
			}

			defer conn.Close()

			values, unsubscribe := request.counter.Subscribe()
			defer unsubscribe()

			value, err := request.counter.Read(request.BaseRequest.Context())

			if err != nil {
				conn.WriteJSON(map[string]any{
					"error": "Failed to retrieve counter value.",
				})

				return
			}

			err = conn.WriteJSON(map[string]any{"value": value})

			if err != nil {
				return
			}

			// Drain client frames so close frames are processed.
			closed := make(chan struct{})

			go func() {
				defer close(closed)

				for {
					if _, _, err := conn.ReadMessage(); err != nil {
						return
					}
				}
			}()

			for {
				select {
				case value, ok := <-values:
					if !ok {
						return
					}

					err = conn.WriteJSON(map[string]any{"value": value})

					if err != nil {
						return
					}
				case <-closed:
					return
				case <-request.BaseRequest.Context().Done():
					return
				}
			}
		},
	}
}
