// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package idem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	authFlow    = "USER_PASSWORD_AUTH"
	amzTarget   = "AWSCognitoIdentityProviderService.InitiateAuth"
	amzJSONCT   = "application/x-amz-json-1.1"
	actionAdd   = "addPlayer"
	actionGet   = "getMatches"
	dialRetries = 3

	// cached tokens are refreshed this long before they expire
	tokenExpiryMargin = time.Minute
)

// Client talks to the Idem matchmaking service. Authentication goes over a
// Cognito-style HTTP exchange; addPlayer and getMatches go over short-lived
// websocket connections, one dial per logical request.
//
// The session token is cached on the client and shared by every caller, so a
// single Client is meant to be shared process-wide.
type Client struct {
	authURL  string
	clientID string
	username string
	password string
	wsURL    string

	httpClient *http.Client
	dialer     *websocket.Dialer

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(authURL, clientID, username, password, wsURL string) *Client {
	return &Client{
		authURL:    authURL,
		clientID:   clientID,
		username:   username,
		password:   password,
		wsURL:      wsURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		dialer: &websocket.Dialer{
			HandshakeTimeout: 15 * time.Second,
		},
	}
}

// Authenticate returns the cached session token, fetching a new one only when
// none is held or the held one is about to expire. The first caller populates
// the cache; concurrent callers block on the same lock and reuse the result.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	result, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}

	c.token = result.IDToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpiryMargin)
	logrus.Info("authenticated with the idem service")

	return c.token, nil
}

func (c *Client) authenticate(ctx context.Context) (*authResult, error) {
	body, err := json.Marshal(authRequest{
		AuthParameters: map[string]string{
			"USERNAME": c.username,
			"PASSWORD": c.password,
		},
		AuthFlow: authFlow,
		ClientID: c.clientID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal auth request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create auth request")
	}
	req.Header.Set("Content-Type", amzJSONCT)
	req.Header.Set("X-Amz-Target", amzTarget)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "idem auth request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("idem auth returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read auth response")
	}

	var parsed authResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "unmarshal auth response")
	}
	if parsed.AuthenticationResult == nil || parsed.AuthenticationResult.IDToken == "" {
		return nil, errors.New("idem auth response carries no token")
	}

	return parsed.AuthenticationResult, nil
}

// AddPlayers submits a roster to the Idem queue. The acknowledgment frame is
// read and discarded; only transport failures are reported.
func (c *Client) AddPlayers(ctx context.Context, token string, gameID string, partyName string, players []Player) error {
	_, err := c.send(ctx, token, gameID, actionAdd, AddPlayerPayload{
		GameID:    gameID,
		PartyName: partyName,
		Players:   players,
	})
	if err != nil {
		return errors.Wrap(err, "addPlayer")
	}

	return nil
}

// GetMatches fetches the current match groupings for the given game mode.
func (c *Client) GetMatches(ctx context.Context, token string, gameID string) (*MatchPayload, error) {
	reply, err := c.send(ctx, token, gameID, actionGet, GameIDPayload{GameID: gameID})
	if err != nil {
		return nil, errors.Wrap(err, "getMatches")
	}

	var parsed matchResponse
	if err := json.Unmarshal(reply, &parsed); err != nil {
		return nil, errors.Wrap(err, "unmarshal getMatches response")
	}

	return &parsed.Payload, nil
}

// send performs one request/reply exchange over a fresh websocket connection.
func (c *Client) send(ctx context.Context, token string, gameID string, action string, payload interface{}) ([]byte, error) {
	message, err := json.Marshal(actionMessage{Action: action, Payload: payload})
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s message", action)
	}

	conn, err := c.dial(ctx, token, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "dial idem websocket")
	}
	defer func() {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"))
		_ = conn.Close()
	}()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.SetReadDeadline(deadline)
	}

	if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return nil, errors.Wrapf(err, "write %s message", action)
	}

	_, reply, err := conn.ReadMessage()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s reply", action)
	}

	return reply, nil
}

func (c *Client) dial(ctx context.Context, token string, gameID string) (*websocket.Conn, error) {
	url := fmt.Sprintf("%s/?receiveMatches=true&gameMode=%s&authorization=%s", c.wsURL, gameID, token)

	var conn *websocket.Conn
	operation := func() error {
		var dialErr error
		conn, _, dialErr = c.dialer.DialContext(ctx, url, nil) //nolint:bodyclose
		return dialErr
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dialRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return conn, nil
}
