// @title Sparse Frames API
// @version 1.0
// @description API for registering videos and extracting sparse, evenly spaced frame sets for photogrammetry.
// @host localhost:8080
// @BasePath /
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sparseframes/internal/daemon"
	_ "sparseframes/internal/docs"
)

func main() {
	server := daemon.NewServer()

	addr := os.Getenv("DAEMON_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received %s, shutting down", sig)
		server.Cleanup()
		os.Exit(0)
	}()

	log.Printf("Starting server on %s\n", addr)
	if err := http.ListenAndServe(addr, server.Routes()); err != nil {
		server.Cleanup()
		log.Fatalf("server failed: %v", err)
	}
}
