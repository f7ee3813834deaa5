package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-news-trader/internal/trader/config"
	"golang-news-trader/internal/trader/delivery/console"
	"golang-news-trader/internal/trader/delivery/notifier"
	"golang-news-trader/internal/trader/extractor"
	"golang-news-trader/internal/trader/publisher"
	"golang-news-trader/internal/trader/repository"
	"golang-news-trader/internal/trader/service"
	"golang-news-trader/pkg/logger"
	"golang-news-trader/pkg/redis"
	"golang-news-trader/pkg/telegram"
	"golang-news-trader/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
	version    = "dev"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetches the latest tech headlines and prints a recommendation for each",
	RunE:  runTrader,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func runTrader(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		appLogger = logger.NewStd()
		appLogger.Warn("Falling back to default logger", zap.Error(err))
	}
	defer func() { _ = appLogger.Sync() }()

	if err := cfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", zap.Error(err))
		return err
	}

	appLogger.Info("Starting news trader",
		zap.String("name", cfg.App.Name),
		zap.String("source", cfg.News.Source),
		zap.String("extractor", cfg.Extractor.Mode))

	// Initialize repositories
	var (
		headlineRepo repository.HeadlineRepository
		ex           extractor.Extractor
	)
	switch cfg.News.Source {
	case config.SourceRSS:
		headlineRepo = repository.NewRSSRepository(cfg, appLogger)
		ex = extractor.NewFeedExtractor(cfg.Extractor.MaxArticles)
	default:
		headlineRepo = repository.NewNewsAPIRepository(cfg, appLogger)
		if cfg.Extractor.Mode == config.ExtractorScan {
			ex = extractor.NewScanExtractor(cfg.Extractor.MaxArticles)
		} else {
			ex = extractor.NewJSONExtractor(cfg.Extractor.MaxArticles)
		}
	}
	sentimentRepo := repository.NewSentimentRepository(cfg, appLogger)

	// Initialize reporters
	printer := console.NewPrinter(cmd.OutOrStdout())
	reporters := []service.Reporter{printer}

	if cfg.Publisher.Enabled {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Warn("Redis publisher disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			reporters = append(reporters, publisher.NewRedisStreamPublisher(
				redisClient.Client, cfg.Publisher.Stream, cfg.Redis.StreamMaxLen, appLogger))
		}
	}

	if cfg.Telegram.Enabled {
		telegramNotifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Telegram digest disabled", zap.Error(err))
		} else {
			reporters = append(reporters, notifier.NewTelegramReporter(telegramNotifier, appLogger))
		}
	}

	svc := service.NewRecommendationService(cfg, appLogger, headlineRepo, ex, sentimentRepo,
		utils.LoadLocation(cfg.App.TimeZone), reporters)

	if err := printer.PrintBanner(); err != nil {
		return err
	}
	if _, err := svc.Run(ctx); err != nil {
		appLogger.Error("Run failed", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "news-trader",
		Short:         "Turns tech headlines into BUY/SELL/HOLD recommendations",
		RunE:          runTrader,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Overrides logger.level from the configuration")

	rootCmd.AddCommand(runCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
