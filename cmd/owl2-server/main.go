// Command owl2-server exposes the five reasoning services plus profile
// checking over HTTP, using a go-chi/chi + go-chi/cors router/middleware
// stack.
package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	cfg := zap.NewProductionConfig()
	if *verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	srv := newServer(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/ontologies", func(r chi.Router) {
		r.Post("/", srv.handleCreateOntology)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/consistency", srv.handleConsistency)
			r.Post("/subsumption", srv.handleSubsumption)
			r.Post("/instance-of", srv.handleInstanceOf)
			r.Get("/classify", srv.handleClassify)
			r.Get("/realize", srv.handleRealize)
			r.Get("/profile/{name}", srv.handleProfile)
		})
	})

	logger.Info("owl2-server listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
