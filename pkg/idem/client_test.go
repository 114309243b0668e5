// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package idem

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		assert.Equal(t, "AWSCognitoIdentityProviderService.InitiateAuth", r.Header.Get("X-Amz-Target"))
		assert.Equal(t, "application/x-amz-json-1.1", r.Header.Get("Content-Type"))

		var request authRequest
		require.Nil(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "USER_PASSWORD_AUTH", request.AuthFlow)
		assert.Equal(t, "test-client", request.ClientID)
		assert.Equal(t, "test-user", request.AuthParameters["USERNAME"])

		response := authResponse{AuthenticationResult: &authResult{
			IDToken:   "test-token",
			ExpiresIn: 3600,
		}}
		_ = json.NewEncoder(w).Encode(response)
	}))
}

// newMatchTestServer upgrades every request to a websocket and answers the
// first frame with the given reply.
func newMatchTestServer(t *testing.T, reply interface{}, received *[]actionMessage) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("authorization"))
		assert.Equal(t, "1v1", r.URL.Query().Get("gameMode"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.Nil(t, err)
		defer conn.Close()

		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var decoded actionMessage
		require.Nil(t, json.Unmarshal(message, &decoded))
		*received = append(*received, decoded)

		replyBody, err := json.Marshal(reply)
		require.Nil(t, err)
		_ = conn.WriteMessage(websocket.TextMessage, replyBody)
	}))
}

func wsURL(httpURL string) string {
	return strings.Replace(httpURL, "http", "ws", 1)
}

func TestAuthenticateCachesToken(t *testing.T) {
	// prepare
	authCalls := 0
	authServer := newAuthTestServer(t, &authCalls)
	defer authServer.Close()

	client := NewClient(authServer.URL, "test-client", "test-user", "test-password", "")
	ctx := context.Background()

	// act
	first, err1 := client.Authenticate(ctx)
	second, err2 := client.Authenticate(ctx)

	// assert
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, "test-token", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, authCalls)
}

func TestAuthenticateRejectedCredentials(t *testing.T) {
	// prepare
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer authServer.Close()

	client := NewClient(authServer.URL, "test-client", "test-user", "bad-password", "")

	// act
	_, err := client.Authenticate(context.Background())

	// assert
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestAddPlayers(t *testing.T) {
	// prepare
	var received []actionMessage
	matchServer := newMatchTestServer(t, map[string]string{"action": "addPlayerResponse"}, &received)
	defer matchServer.Close()

	client := NewClient("", "", "", "", wsURL(matchServer.URL))

	// act
	err := client.AddPlayers(context.Background(), "test-token", "1v1", "party1", []Player{
		{PlayerID: "p1", Servers: []string{"main"}},
		{PlayerID: "p2", Servers: []string{"main"}},
	})

	// assert
	assert.Nil(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "addPlayer", received[0].Action)
}

func TestGetMatches(t *testing.T) {
	// prepare
	reply := matchResponse{
		Action: "getMatchesResponse",
		Payload: MatchPayload{
			GameID: "1v1",
			Matches: []MatchResult{{
				UUID: "grouping-1",
				Teams: []TeamResult{
					{Players: []PlayerResult{{PlayerID: "p1"}}},
					{Players: []PlayerResult{{PlayerID: "p2"}}},
				},
			}},
		},
	}
	var received []actionMessage
	matchServer := newMatchTestServer(t, reply, &received)
	defer matchServer.Close()

	client := NewClient("", "", "", "", wsURL(matchServer.URL))

	// act
	payload, err := client.GetMatches(context.Background(), "test-token", "1v1")

	// assert
	assert.Nil(t, err)
	require.NotNil(t, payload)
	require.Len(t, payload.Matches, 1)
	assert.Equal(t, "grouping-1", payload.Matches[0].UUID)
	require.Len(t, payload.Matches[0].Teams, 2)
	assert.Equal(t, "p1", payload.Matches[0].Teams[0].Players[0].PlayerID)

	require.Len(t, received, 1)
	assert.Equal(t, "getMatches", received[0].Action)
}
