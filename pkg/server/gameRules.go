// Copyright (c) 2022 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

// GameRules is the schema of the rules JSON attached to a matchmaking
// session. Only the ship count window drives batching; any other fields in
// the payload are ignored.
type GameRules struct {
	ShipCountMin int `json:"shipCountMin"`
	ShipCountMax int `json:"shipCountMax"`
}
