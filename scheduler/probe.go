package scheduler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Probe answers keep-alive health checks with 200 and exposes the
// prometheus registry on /metrics. It blocks until ctx is cancelled.
func Probe(ctx context.Context, port string, log zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           probeMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("probe shutdown failed")
		}
	}()

	log.Info().Str("port", port).Msg("keep-alive probe listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("keep-alive probe stopped")
	}
}

func probeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok")
	})
	return mux
}
