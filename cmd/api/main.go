// Command api runs the SwipeHire HTTP server.
package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/sudharson99/swipeHire/internal/server"
)

// @title SwipeHire API
// @version 1.0
// @description Job board REST API with swipe gesture semantics.
// @BasePath /api
func main() {
	srv, err := server.NewServer()
	if err != nil {
		log.Fatalf("Server failed to initialize: %s", err)
	}

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server stopped: %s", err)
	}
}
