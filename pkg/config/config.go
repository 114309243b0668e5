// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

// Config holds everything the server reads from the environment. It is loaded
// once in main and treated as immutable afterwards.
type Config struct {
	GRPCPort    int    `env:"PORT" envDefault:"6565" envDocs:"grpc server port"`
	MetricsPort int    `env:"PROMETHEUS_PORT" envDefault:"8080" envDocs:"prometheus metrics http port"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"idem-matchmaking-function-grpc-server" envDocs:"service name reported on traces"`
	ZipkinURL   string `env:"ZIPKIN_URL" envDefault:"" envDocs:"zipkin collector endpoint, tracing disabled when empty"`

	ABBaseURL      string `env:"AB_BASE_URL" envDefault:"https://demo.accelbyte.io" envDocs:"AccelByte IAM base url"`
	ABClientID     string `env:"AB_CLIENT_ID" envDefault:"" envDocs:"IAM oauth client id"`
	ABClientSecret string `env:"AB_CLIENT_SECRET" envDefault:"" envDocs:"IAM oauth client secret"`
	ABNamespace    string `env:"AB_NAMESPACE" envDefault:"accelbyte" envDocs:"namespace access tokens must carry"`
	ResourceName   string `env:"AB_RESOURCE_NAME" envDefault:"MMV2GRPCSERVICE" envDocs:"resource name used in the required permission"`
	AuthEnabled    bool   `env:"PLUGIN_GRPC_SERVER_AUTH_ENABLED" envDefault:"true" envDocs:"reject calls without a valid access token"`

	IdemAuthURL   string `env:"IDEM_AUTH_URL" envDefault:"https://cognito-idp.eu-central-1.amazonaws.com/" envDocs:"Idem authentication endpoint"`
	IdemClientID  string `env:"IDEM_CLIENT_ID" envDefault:"3b7bo4gjuqsjuer6eatjsgo58u" envDocs:"Idem auth flow client id"`
	IdemUsername  string `env:"IDEM_USERNAME" envDefault:"" envDocs:"Idem account username"`
	IdemPassword  string `env:"IDEM_PASSWORD" envDefault:"" envDocs:"Idem account password"`
	IdemWSURL     string `env:"IDEM_WS_URL" envDefault:"wss://ws-int.idem.gg" envDocs:"Idem websocket endpoint"`
	IdemGameID    string `env:"IDEM_GAME_ID" envDefault:"1v1" envDocs:"game mode submitted to Idem"`
	IdemPartyName string `env:"IDEM_PARTY_NAME" envDefault:"party1" envDocs:"Idem party name submitted with rosters"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
