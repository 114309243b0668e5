// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"

	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/idem"
)

// MatchSource is the external service that turns a roster of waiting players
// into team groupings. The production implementation is idem.Client; tests
// substitute a stub.
//
// Authenticate is idempotent: the implementation caches the session token and
// every caller after the first reuses it until it expires.
type MatchSource interface {
	Authenticate(ctx context.Context) (string, error)
	AddPlayers(ctx context.Context, token string, gameID string, partyName string, players []idem.Player) error
	GetMatches(ctx context.Context, token string, gameID string) (*idem.MatchPayload, error)
}

// TokenValidator is the boundary to the access token library. Only the two
// operations the authorization gate needs are exposed here.
type TokenValidator interface {
	Validate(accessToken string) error
	ParseClaims(accessToken string) (*JWTClaims, error)
}
