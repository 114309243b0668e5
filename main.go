// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/config"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/idem"
	matchfunctiongrpc "github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/pb"
	"github.com/idem-matchmaking/idem-matchmaking-function-grpc-plugin-server/pkg/server"
)

const (
	environment         = "production"
	id                  = 1
	tokenValidatorTTL   = time.Hour
	shutdownGracePeriod = 5 * time.Second
)

func initTracerProvider(cfg *config.Config) (*sdktrace.TracerProvider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
		attribute.String("environment", environment),
		attribute.Int64("ID", id),
	)

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	}
	if cfg.ZipkinURL != "" {
		exporter, err := zipkin.New(cfg.ZipkinURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create zipkin exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter)))
	}

	tracerProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	// b3 propagation for envoy, plus the w3c defaults
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

func serveMetrics(cfg *config.Config, registry *prometheus.Registry, grpcServer *grpc.Server) {
	grpcMetrics := grpcPrometheus.NewServerMetrics()
	grpcMetrics.InitializeMetrics(grpcServer)
	registry.MustRegister(grpcMetrics)

	httpServer := &http.Server{
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
	}
	logrus.Printf("serving metrics at :%d/metrics", cfg.MetricsPort)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("unable to start the metrics http server. %s", err.Error())
	}
}

func main() {
	logrus.Infof("starting app server.")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)

		return
	}

	tp, err := initTracerProvider(cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize the tracer provider. %s", err.Error())

		return
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, shutdownGracePeriod)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logrus.Error(err)
		}
	}()

	registry := prometheus.NewRegistry()
	latencyObserver := server.NewLatencyObserver(registry)

	unaryInterceptors := []grpc.UnaryServerInterceptor{
		server.NewGRPCUnaryServerInterceptor(),
		logging.UnaryServerInterceptor(server.InterceptorLogger(logrus.StandardLogger())),
		latencyObserver.UnaryServerInterceptor(),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		server.NewGRPCStreamServerInterceptor(),
		logging.StreamServerInterceptor(server.InterceptorLogger(logrus.StandardLogger())),
		latencyObserver.StreamServerInterceptor(),
	}

	if cfg.AuthEnabled {
		tokenValidator := server.NewTokenValidator(
			cfg.ABBaseURL, cfg.ABClientID, cfg.ABClientSecret,
			cfg.ABNamespace, cfg.ResourceName, tokenValidatorTTL)
		authInterceptor := server.NewAuthServerInterceptor(tokenValidator, cfg.ABNamespace)
		unaryInterceptors = append(unaryInterceptors, authInterceptor.UnaryServerInterceptor())
		streamInterceptors = append(streamInterceptors, authInterceptor.StreamServerInterceptor())
	} else {
		logrus.Warn("authorization is disabled, every call will be accepted.")
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	matchSource := idem.NewClient(cfg.IdemAuthURL, cfg.IdemClientID, cfg.IdemUsername, cfg.IdemPassword, cfg.IdemWSURL)
	matchfunctiongrpc.RegisterMatchFunctionServer(s, &server.MatchFunctionServer{
		MatchSource: matchSource,
		GameID:      cfg.IdemGameID,
		PartyName:   cfg.IdemPartyName,
	})

	healthgrpc.RegisterHealthServer(s, health.NewServer())
	logrus.Infof("adding the grpc reflection.")
	reflection.Register(s)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logrus.Fatalf("failed to listen: %v", err)

		return
	}
	logrus.Printf("gRPC server listening at %v", lis.Addr())

	go serveMetrics(cfg, registry, s)

	go func() {
		if err := s.Serve(lis); err != nil {
			logrus.Fatalf("failed to serve: %v", err)
		}
	}()

	signalCtx, signalCancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer signalCancel()
	<-signalCtx.Done()

	logrus.Infof("shutting down.")
	s.GracefulStop()
}
