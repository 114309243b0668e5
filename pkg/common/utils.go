// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRandomInt generate a random int that is not determined
func GenerateRandomInt() int {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	return random.Intn(10000)
}

// MakeTraceID create new traceID
// example: service_1234
func MakeTraceID(identifiers ...string) string {
	strInt := strconv.Itoa(GenerateRandomInt())
	var tID string
	for _, i := range identifiers {
		tID = fmt.Sprintf(tID + i + "_")
	}

	return fmt.Sprintf(tID + strInt)
}

// GenerateUUID generates uuid without hyphens
func GenerateUUID() string {
	id, _ := uuid.NewRandom()

	return strings.ReplaceAll(id.String(), "-", "")
}
