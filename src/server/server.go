package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"emeraldshop/src/directors"
	"emeraldshop/src/schema"
	"emeraldshop/src/settings"
	"emeraldshop/src/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server is the HTTP front end for the flower shop backend.
type Server struct {
	args     *settings.Arguments
	store    store.DocumentStore
	products *directors.ProductService
	orders   *directors.OrderService
	registry *schema.Registry
	logger   *zap.SugaredLogger
	httpSrv  *http.Server
	Running  bool
}

// InitServer wires the services and routes. The store binding is made
// by the caller and handed in; the server never reaches for a global.
func InitServer(args *settings.Arguments, docStore store.DocumentStore,
	logger *zap.SugaredLogger) (*Server, error) {
	s := &Server{
		args:     args,
		store:    docStore,
		products: directors.NewProductService(docStore, args, logger),
		orders:   directors.NewOrderService(docStore, args, logger),
		registry: schema.NewRegistry(),
		logger:   logger,
	}

	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", args.Host, args.Port),
		Handler: s.Handler(),
	}

	return s, nil
}

// Handler builds the full route tree with middleware applied. Split out
// from InitServer so tests can serve it directly.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/api/hello", s.handleHello).Methods(http.MethodGet)
	r.HandleFunc("/api/products", s.handleListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products", s.handleCreateProduct).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", s.handleCreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/schema", s.handleSchema).Methods(http.MethodGet)
	r.HandleFunc("/test", s.handleDiagnostics).Methods(http.MethodGet)

	// CORS sits outermost so preflight requests never hit the router,
	// whose method restrictions would reject OPTIONS.
	return corsMiddleware(s.requestLogger(r))
}

// Start begins serving in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("error starting server on %s: %w", s.httpSrv.Addr, err)
	}

	s.Running = true
	s.logger.Infof("Emerald Flower Shop backend listening on %s", s.httpSrv.Addr)

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Errorw("HTTP server stopped", "error", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server, letting in-flight requests
// finish until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.Running = false

	err := s.httpSrv.Shutdown(ctx)

	s.logger.Info("Server shutdown complete")
	s.logger.Sync()

	return err
}
