// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootScopeMintsTraceID(t *testing.T) {
	scope := NewRootScope(context.Background(), "session", "")
	defer scope.Finish()

	assert.True(t, strings.HasPrefix(scope.TraceID, "session_"))
}

func TestNewRootScopeAdoptsUpstreamTraceID(t *testing.T) {
	scope := NewRootScope(context.Background(), "session", "upstream-trace-id")
	defer scope.Finish()

	assert.Equal(t, "upstream-trace-id", scope.TraceID)
}

func TestNewChildScopeKeepsTraceID(t *testing.T) {
	root := NewRootScope(context.Background(), "session", "upstream-trace-id")
	defer root.Finish()

	child := root.NewChildScope("round")
	defer child.Finish()

	assert.Equal(t, root.TraceID, child.TraceID)
}
