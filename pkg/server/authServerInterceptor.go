// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// methods that bypass authentication entirely
var allowListedMethods = []string{
	"/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo",
	"/grpc.health.v1.Health/Check",
	"/grpc.health.v1.Health/Watch",
}

// AuthServerInterceptor guards every RPC entry point. Streaming calls are
// authenticated once at call setup, not per message. Handler errors are not
// touched here; only the gate itself produces statuses, one per failure kind:
// Unauthenticated for missing or invalid tokens, InvalidArgument for a
// malformed header, PermissionDenied for a namespace mismatch and Internal
// for unreadable claims.
type AuthServerInterceptor struct {
	Validator TokenValidator
	Namespace string
}

func NewAuthServerInterceptor(validator TokenValidator, namespace string) *AuthServerInterceptor {
	return &AuthServerInterceptor{
		Validator: validator,
		Namespace: namespace,
	}
}

func (a *AuthServerInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := a.authorize(ctx, info.FullMethod); err != nil {
			logrus.WithField("method", info.FullMethod).Errorf("authorization error: %v", err)

			return nil, err
		}

		return handler(ctx, req)
	}
}

func (a *AuthServerInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := a.authorize(stream.Context(), info.FullMethod); err != nil {
			logrus.WithField("method", info.FullMethod).Errorf("authorization error: %v", err)

			return err
		}

		return handler(srv, stream)
	}
}

// authorize is the single gate shared by all call shapes.
func (a *AuthServerInterceptor) authorize(ctx context.Context, fullMethod string) error {
	for _, method := range allowListedMethods {
		if strings.TrimSpace(fullMethod) == method {
			return nil
		}
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "no request metadata")
	}

	authorization := md.Get("authorization")
	if len(authorization) == 0 {
		return status.Error(codes.Unauthenticated, "no authorization token provided")
	}

	authParts := strings.Fields(authorization[0])
	if len(authParts) != 2 {
		return status.Error(codes.InvalidArgument, "invalid authorization token format")
	}

	accessToken := authParts[1]
	if err := a.Validator.Validate(accessToken); err != nil {
		return status.Errorf(codes.Unauthenticated, "invalid access token: %s", err.Error())
	}

	claims, err := a.Validator.ParseClaims(accessToken)
	if err != nil {
		return status.Errorf(codes.Internal, "could not read access token payload: %s", err.Error())
	}

	tokenNamespace := claims.ExtendNamespace
	if tokenNamespace == "" {
		tokenNamespace = claims.Namespace
	}
	if tokenNamespace != a.Namespace {
		return status.Errorf(codes.PermissionDenied,
			"invalid access token for this namespace, access token is intended for '%s' namespace", tokenNamespace)
	}

	return nil
}
