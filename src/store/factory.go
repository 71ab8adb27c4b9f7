package store

import (
	"emeraldshop/src/settings"

	"go.uber.org/zap"
)

// NewDocumentStore resolves the store binding once at process start.
//
// Supported backends:
//
//	"mongo"  - MongoDB at DatabaseURL/DatabaseName (default)
//	"memory" - In-memory (ephemeral, for testing)
//
// Missing or broken configuration never fails the process; the service
// comes up with an UnavailableStore and every call reports that state.
func NewDocumentStore(args *settings.Arguments, logger *zap.SugaredLogger) DocumentStore {
	switch args.StoreBackend {
	case "memory":
		logger.Info("Using in-memory document store")
		return NewMemoryStore()
	case "mongo", "":
		if args.DatabaseURL == "" || args.DatabaseName == "" {
			logger.Warn("DATABASE_URL or DATABASE_NAME not set; document store is unavailable")
			return UnavailableStore{}
		}
		s, err := NewMongoStore(args.DatabaseURL, args.DatabaseName, logger)
		if err != nil {
			logger.Warnw("Failed to bind document store; continuing degraded", "error", err)
			return UnavailableStore{}
		}
		return s
	default:
		logger.Warnf("Unknown store backend %q; document store is unavailable", args.StoreBackend)
		return UnavailableStore{}
	}
}
