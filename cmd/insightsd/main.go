package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/camille-renard/nutrition-insights/constants"
	v1 "github.com/camille-renard/nutrition-insights/gen/proto/insights/v1"
	"github.com/camille-renard/nutrition-insights/internal/common"
	"github.com/camille-renard/nutrition-insights/internal/export"
	"github.com/camille-renard/nutrition-insights/internal/nutrient"
	"github.com/camille-renard/nutrition-insights/internal/pipeline"
	repo "github.com/camille-renard/nutrition-insights/internal/repository"
	svc "github.com/camille-renard/nutrition-insights/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	// Compile the mention dictionary once; an inconsistent dictionary must
	// never serve extraction calls.
	extractor, err := nutrient.NewExtractor()
	if err != nil {
		logger.Error("failed to compile nutrient matchers", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	insightsRepo := repo.NewInsightRepository(entc, logger)

	// Flag rows produced by older extractor versions so reviewers and
	// recomputation jobs can tell stale payloads apart.
	for _, t := range []constants.InsightType{constants.InsightTypeNutrient, constants.InsightTypeNutrientMention} {
		if _, err := insightsRepo.MarkOutdated(ctx, t, nutrient.ExtractorVersion); err != nil {
			logger.Error("failed to mark outdated insights", "type", t, "error", err)
			os.Exit(1)
		}
	}

	stage := pipeline.NewExtractStage(logger, extractor, insightsRepo)
	exporter := export.NewService(insightsRepo, logger)
	v1.RegisterInsightsServiceServer(grpcServer, svc.NewInsightsService(stage, insightsRepo, exporter, logger))

	go func() {
		logger.Info("grpc server listening", "addr", addr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
