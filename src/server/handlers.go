package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"emeraldshop/src/helpers"
	"emeraldshop/src/schema"
	"emeraldshop/src/store"
)

// Bounds on error text surfaced to callers. Store drivers can produce
// very long messages.
const (
	errDetailLimit  = 200
	diagDetailLimit = 50
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Emerald Flower Shop Backend is running",
	})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Hello from the backend API!",
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "limit must be an integer")
			return
		}
		limit = n
	}

	docs, err := s.products.ListProducts(r.Context(), limit)
	if err != nil {
		s.respondFailure(w, err)
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": docs})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	id, err := s.products.AddProduct(r.Context(), raw)
	if err != nil {
		s.respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	id, err := s.orders.SubmitOrder(r.Context(), raw)
	if err != nil {
		s.respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"id":     id,
		"status": "received",
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.registry.Definitions())
}

// handleDiagnostics never fails; every error is folded into the status
// fields. Three database states are reported distinctly: no binding at
// all, bound but erroring, and bound and working.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "Running",
		"database":          "Not Available",
		"database_url":      "Not Set",
		"database_name":     "Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if s.args.DatabaseURL != "" {
		resp["database_url"] = "Set"
	}
	if s.args.DatabaseName != "" {
		resp["database_name"] = "Set"
	}

	if s.store.Kind() == "none" {
		resp["database"] = "Available but not initialized"
		respondJSON(w, http.StatusOK, resp)
		return
	}

	resp["connection_status"] = "Connected"

	names, err := s.store.CollectionNames(r.Context())
	if err != nil {
		resp["database"] = "Connected but Error: " + helpers.TruncateError(err, diagDetailLimit)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		if names == nil {
			names = []string{}
		}
		resp["database"] = "Connected & Working"
		resp["collections"] = names
	}

	respondJSON(w, http.StatusOK, resp)
}

// respondFailure maps service errors onto the HTTP surface: validation
// failures become 422 with every violated field enumerated, everything
// else becomes a 500 with bounded detail.
func (s *Server) respondFailure(w http.ResponseWriter, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": verr.Error(),
			"fields": verr.Fields,
		})
		return
	}

	s.logger.Errorw("Request failed", "error", err)
	respondError(w, http.StatusInternalServerError, helpers.TruncateError(err, errDetailLimit))
}
