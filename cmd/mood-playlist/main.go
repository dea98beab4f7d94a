// Command mood-playlist runs the mood playlist API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lunamik/go-mood-playlist/internal/engine"
	"github.com/lunamik/go-mood-playlist/internal/spotify"
	"github.com/lunamik/go-mood-playlist/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real deployments use the environment directly.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("please set SPOTIFY_ID and SPOTIFY_SECRET environment variables")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = web.DefaultAddr
	}

	client, err := spotify.NewClient(context.Background(), spotify.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
	if err != nil {
		return fmt.Errorf("creating spotify client: %w", err)
	}

	eng := engine.New(spotify.NewSource(client))

	server, err := web.NewServer(web.ServerConfig{
		Addr:   addr,
		Engine: eng,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
