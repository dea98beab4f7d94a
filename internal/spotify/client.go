// Package spotify implements the engine's candidate source on top of the
// Spotify Web API recommendation endpoint.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials holds the Spotify app credentials. Recommendations need no
// user scope, so the client authenticates with the client-credentials flow.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// NewClient creates an authenticated Spotify API client. Token refresh is
// handled by the underlying oauth2 transport.
func NewClient(ctx context.Context, creds Credentials) (*spotify.Client, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("spotify client ID and secret are required")
	}

	config := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return spotify.New(httpClient), nil
}
