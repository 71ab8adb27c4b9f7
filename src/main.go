package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emeraldshop/src/server"
	"emeraldshop/src/settings"
	"emeraldshop/src/store"

	"go.uber.org/zap"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("Emerald Flower Shop backend - catalog and order API over a document store")
	log.Println("\nUsage:")
	log.Println("  emeraldshop [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  emeraldshop --port=8000")
	log.Println("  emeraldshop --backend=memory --debug")
}

func main() {
	args := &settings.Arguments{}

	// Define command line flags that map to the Arguments struct.
	// Environment variables supply the defaults so container deploys
	// need no flags at all.
	flag.StringVar(&args.Host, "host", settings.EnvString("HOST", "0.0.0.0"), "Host name or IP address to listen on")
	flag.IntVar(&args.Port, "port", settings.EnvInt("PORT", 8000), "Port for the HTTP server")
	flag.StringVar(&args.DatabaseURL, "dburl", os.Getenv("DATABASE_URL"), "Connection string for the document store")
	flag.StringVar(&args.DatabaseName, "dbname", os.Getenv("DATABASE_NAME"), "Database name within the store")
	flag.StringVar(&args.StoreBackend, "backend", settings.EnvString("STORE_BACKEND", "mongo"), "Store backend (mongo, memory)")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")

	// Parse the command line
	flag.Parse()

	// Validate the arguments
	if err := validateArguments(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		printUsage()
		os.Exit(1)
	}

	var logger *zap.Logger
	var err error

	if args.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		logger, err = z.Build()
	} else {
		// Production configuration
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Create a sugared logger for easier API
	sugar := logger.Sugar()

	// Replace standard log with zap
	zap.ReplaceGlobals(logger)

	// Print the arguments if in verbose mode
	if args.Verbose {
		sugar.Infow("Emerald Flower Shop backend starting",
			"host", args.Host,
			"port", args.Port,
			"backend", args.StoreBackend,
			"databaseName", args.DatabaseName)
	}

	// Bind the document store once. A missing or broken configuration
	// degrades the store instead of failing startup.
	docStore := store.NewDocumentStore(args, sugar)

	// Create and start the server
	srv, err := server.InitServer(args, docStore, sugar)
	if err != nil {
		sugar.Fatalf("Failed to initialize server: %v", err)
	}

	// Start the server
	if err := srv.Start(); err != nil {
		sugar.Fatalf("Failed to start server: %v", err)
	}

	// Handle graceful shutdown
	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)

	<-shutdownSignal
	fmt.Println("\nShutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		sugar.Errorf("Error stopping server: %v", err)
	}

	fmt.Println("Server shutdown complete")
}

// validateArguments validates the arguments and returns an error if invalid
func validateArguments(args *settings.Arguments) error {
	// Validate port range
	if args.Port < 1 || args.Port > 65535 {
		return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", args.Port)
	}

	// Validate backend
	validBackends := map[string]bool{"mongo": true, "memory": true, "": true}
	if _, valid := validBackends[args.StoreBackend]; !valid {
		return fmt.Errorf("invalid store backend: %s (must be 'mongo' or 'memory')", args.StoreBackend)
	}

	return nil
}
