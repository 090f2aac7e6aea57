// Command simulator drives a demo charging session against a running
// server: it registers a user, finds nearby chargers, starts charging the
// closest one, follows the realtime feed, and stops the session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	serverURL = flag.String("server", "http://localhost:8080", "Server base URL")
	email     = flag.String("email", "demo@chargehub.dev", "Demo account email")
	password  = flag.String("password", "demo-password", "Demo account password")
	lat       = flag.Float64("lat", 60.1699, "Search latitude")
	lon       = flag.Float64("lon", 24.9384, "Search longitude")
	radius    = flag.Float64("radius", 10, "Search radius in km")
	energy    = flag.Float64("energy", 5, "Target energy in kWh (0 = no target)")
	duration  = flag.Duration("duration", 30*time.Second, "How long to charge before stopping")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := NewClient(*serverURL, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down simulator...")
		cancel()
	}()

	if err := client.RunDemo(ctx, DemoConfig{
		Email:     *email,
		Password:  *password,
		Latitude:  *lat,
		Longitude: *lon,
		RadiusKm:  *radius,
		MaxEnergy: *energy,
		Duration:  *duration,
	}); err != nil {
		logger.Fatal("Demo run failed", zap.Error(err))
	}
}
