// Command scoreboard serves the racer score table over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/racer796/config"
	"github.com/lixenwraith/racer796/score"
)

func main() {
	cfg := config.LoadConfig()
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "Listen address")
	flag.Parse()

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           score.NewRouter(score.NewStore()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Score table listening on http://localhost%s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
