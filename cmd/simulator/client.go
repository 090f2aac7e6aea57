package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
)

// DemoConfig parameterizes one demo charging run.
type DemoConfig struct {
	Email     string
	Password  string
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	MaxEnergy float64
	Duration  time.Duration
}

// Client is a thin REST+websocket client for the demo flow.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// RunDemo walks the full user journey: sign in, search, charge, observe,
// stop.
func (c *Client) RunDemo(ctx context.Context, cfg DemoConfig) error {
	if err := c.signIn(ctx, cfg.Email, cfg.Password); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	chargers, err := c.nearbyChargers(ctx, cfg.Latitude, cfg.Longitude, cfg.RadiusKm)
	if err != nil {
		return fmt.Errorf("charger lookup: %w", err)
	}
	if len(chargers) == 0 {
		return fmt.Errorf("no chargers within %.0f km of (%.4f, %.4f)", cfg.RadiusKm, cfg.Latitude, cfg.Longitude)
	}

	fmt.Printf("Found %d chargers:\n", len(chargers))
	for _, charger := range chargers {
		fmt.Printf("  %-35s %-10s %s away, %d/%d free\n",
			charger.Name, charger.Network, domain.FormatDistance(charger.Distance),
			charger.Available, charger.Total)
	}

	// Follow the realtime feed for the duration of the session.
	feedDone := make(chan struct{})
	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()
	go func() {
		defer close(feedDone)
		if err := c.followUpdates(feedCtx); err != nil {
			c.log.Debug("Realtime feed closed", zap.Error(err))
		}
	}()

	target := chargers[0]
	session, err := c.startSession(ctx, target, cfg.MaxEnergy)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if session.Status == domain.SessionStatusError {
		return fmt.Errorf("session failed to start: %s", session.ErrorMessage)
	}
	fmt.Printf("\nCharging at %s (%.0f kW)\n", session.ChargerName, session.CurrentPower)

	select {
	case <-ctx.Done():
	case <-time.After(cfg.Duration):
	}

	stopped, err := c.stopSession(context.Background(), session.ID)
	if err != nil {
		return fmt.Errorf("stop session: %w", err)
	}
	fmt.Printf("\nSession %s: %.2f kWh delivered, %.2f EUR, duration %s\n",
		stopped.Status, stopped.EnergyDelivered, stopped.EstimatedCost,
		domain.FormatDuration(stopped.StartTime, stopped.EndTime, time.Now()))

	stopFeed()
	<-feedDone
	return nil
}

// signIn registers the demo account, falling back to login when it already
// exists.
func (c *Client) signIn(ctx context.Context, email, password string) error {
	signup := map[string]string{"email": email, "password": password, "name": "Demo User"}
	resp, err := c.post(ctx, "/api/v1/auth/signup", signup)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		return fmt.Errorf("signup returned %s", resp.Status)
	}

	login := map[string]string{"email": email, "password": password}
	resp, err = c.post(ctx, "/api/v1/auth/login", login)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login returned %s", resp.Status)
	}

	var result struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	c.token = result.Token

	fmt.Printf("Signed in as %s\n", result.User.Email)
	return nil
}

func (c *Client) nearbyChargers(ctx context.Context, lat, lon, radius float64) ([]domain.ChargerWithDistance, error) {
	path := fmt.Sprintf("/api/v1/chargers/nearby?lat=%f&lon=%f&radius=%f", lat, lon, radius)
	var chargers []domain.ChargerWithDistance
	if err := c.getJSON(ctx, path, &chargers); err != nil {
		return nil, err
	}
	return chargers, nil
}

func (c *Client) startSession(ctx context.Context, charger domain.ChargerWithDistance, maxEnergy float64) (*domain.ChargingSession, error) {
	body := map[string]interface{}{
		"charger_id":   charger.ID,
		"charger_name": charger.Name,
		"network":      charger.Network,
	}
	if maxEnergy > 0 {
		body["max_energy"] = maxEnergy
	}

	resp, err := c.post(ctx, "/api/v1/sessions", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("start returned %s: %s", resp.Status, readBody(resp))
	}

	var session domain.ChargingSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) stopSession(ctx context.Context, id string) (*domain.ChargingSession, error) {
	resp, err := c.post(ctx, "/api/v1/sessions/"+id+"/stop", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stop returned %s: %s", resp.Status, readBody(resp))
	}

	var session domain.ChargingSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// followUpdates subscribes to the realtime feed and prints notifications as
// they arrive.
func (c *Client) followUpdates(ctx context.Context) error {
	wsURL, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	switch wsURL.Scheme {
	case "https":
		wsURL.Scheme = "wss"
	default:
		wsURL.Scheme = "ws"
	}
	wsURL.Path = "/ws/updates"

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL.String(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var update struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(message, &update); err != nil {
			continue
		}

		switch update.Type {
		case "notification":
			var notification domain.Notification
			if err := json.Unmarshal(update.Data, &notification); err == nil {
				fmt.Printf("  [%s] %s: %s\n", notification.Type, notification.Title, notification.Message)
			}
		case "network_status":
			var status struct {
				Connected bool `json:"connected"`
			}
			if err := json.Unmarshal(update.Data, &status); err == nil {
				fmt.Printf("  [network] connected=%v\n", status.Connected)
			}
		}
	}
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned %s: %s", path, resp.Status, readBody(resp))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readBody(resp *http.Response) string {
	data, _ := io.ReadAll(resp.Body)
	return strings.TrimSpace(string(data))
}
