// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package idem

// Player is one roster entry submitted to the Idem queue.
type Player struct {
	PlayerID string   `json:"playerId"`
	Servers  []string `json:"servers"`
}

// AddPlayerPayload is the payload of the addPlayer action.
type AddPlayerPayload struct {
	GameID    string   `json:"gameId"`
	PartyName string   `json:"partyName"`
	Players   []Player `json:"players"`
}

// GameIDPayload is the payload of the getMatches action.
type GameIDPayload struct {
	GameID string `json:"gameId"`
}

// PlayerResult is a matched player inside a returned team.
type PlayerResult struct {
	PlayerID  string `json:"playerId"`
	Reference string `json:"reference"`
}

// TeamResult is one team inside a returned match grouping.
type TeamResult struct {
	Players []PlayerResult `json:"players"`
}

// MatchResult is one match grouping returned by Idem.
type MatchResult struct {
	UUID  string       `json:"uuid"`
	Teams []TeamResult `json:"teams"`
}

// MatchPayload is the payload of the getMatches reply.
type MatchPayload struct {
	UID     string        `json:"uid"`
	GameID  string        `json:"gameId"`
	Matches []MatchResult `json:"matches"`
}

type actionMessage struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

type matchResponse struct {
	Action    string       `json:"action"`
	MessageID string       `json:"messageId"`
	Payload   MatchPayload `json:"payload"`
}

type authRequest struct {
	AuthParameters map[string]string `json:"AuthParameters"`
	AuthFlow       string            `json:"AuthFlow"`
	ClientID       string            `json:"ClientId"`
}

type authResult struct {
	AccessToken  string `json:"AccessToken"`
	ExpiresIn    int    `json:"ExpiresIn"`
	IDToken      string `json:"IdToken"`
	RefreshToken string `json:"RefreshToken"`
	TokenType    string `json:"TokenType"`
}

type authResponse struct {
	AuthenticationResult *authResult `json:"AuthenticationResult"`
}
