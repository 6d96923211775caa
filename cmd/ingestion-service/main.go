package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-pulse/internal/ingestion/config"
	"golang-stock-pulse/internal/ingestion/repository"
	"golang-stock-pulse/internal/ingestion/service"
	"golang-stock-pulse/pkg/common"
	"golang-stock-pulse/pkg/logger"
	"golang-stock-pulse/pkg/postgres"
	"golang-stock-pulse/pkg/telegram"

	"google.golang.org/genai"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath    string
	candlesDir    string
	tickers       []string
	fromCompanies bool
	throttle      string
	days          int
	maxPerCompany int
)

var candlesCmd = &cobra.Command{
	Use:   "candles",
	Short: "Imports hourly candles from per-ticker JSON files",
	Run:   runCandles,
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Imports company news and labels each headline with a sentiment",
	Run:   runNews,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Runs both importers on a cron schedule",
	Run:   runSchedule,
}

// deps bundles everything a subcommand needs after bootstrap.
type deps struct {
	cfg      *config.Config
	logger   *logger.Logger
	db       *postgres.DB
	notifier telegram.Notifier
}

func mustBootstrap() (*deps, func()) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	d := &deps{
		cfg:      cfg,
		logger:   appLogger,
		db:       db,
		notifier: newNotifier(cfg, appLogger),
	}
	cleanup := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			sqlDB.Close()
		}
		_ = appLogger.Sync()
	}
	return d, cleanup
}

// newNotifier returns a real Telegram client when a bot token is configured,
// otherwise a noop.
func newNotifier(cfg *config.Config, appLogger *logger.Logger) telegram.Notifier {
	if cfg.Telegram.BotToken == "" {
		return telegram.NewNoopNotifier()
	}
	notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
	}
	return notifier
}

func newCandleImporter(d *deps) *service.CandleImporter {
	return service.NewCandleImporter(
		d.logger,
		repository.NewCandleFileRepository(),
		repository.NewCompanyRepository(d.db.DB),
		repository.NewMarketCandleRepository(d.db.DB),
		repository.NewIngestionRunRepository(d.db.DB),
		d.notifier,
	)
}

func newNewsImporter(ctx context.Context, d *deps) *service.NewsImporter {
	return service.NewNewsImporter(
		d.logger,
		repository.NewCompanyRepository(d.db.DB),
		repository.NewArticleRepository(d.db.DB),
		repository.NewIngestionRunRepository(d.db.DB),
		newNewsRepository(d),
		newSentimentRepository(ctx, d),
		d.notifier,
	)
}

// newNewsRepository picks the news provider from the configuration.
func newNewsRepository(d *deps) repository.NewsRepository {
	switch d.cfg.News.Provider {
	case common.ProviderRSS:
		repo, err := repository.NewRSSNewsRepository(d.cfg, d.logger)
		if err != nil {
			d.logger.Fatal("Failed to initialize RSS news repository", zap.Error(err))
		}
		return repo
	case common.ProviderFinnhub, "":
		repo, err := repository.NewFinnhubNewsRepository(d.cfg, d.logger)
		if err != nil {
			d.logger.Fatal("Failed to initialize Finnhub news repository", zap.Error(err))
		}
		return repo
	default:
		d.logger.Fatal("Invalid news provider specified in config", zap.String("provider", d.cfg.News.Provider))
		return nil
	}
}

// newSentimentRepository picks the AI provider from the configuration and
// wraps it with an in-memory cache.
func newSentimentRepository(ctx context.Context, d *deps) repository.SentimentRepository {
	var inner repository.SentimentRepository
	switch d.cfg.AI.Provider {
	case common.ProviderGemini:
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: d.cfg.Gemini.APIKey,
		})
		if err != nil {
			d.logger.Fatal("Failed to initialize Gemini AI client", zap.Error(err))
		}
		repo, err := repository.NewGeminiAIRepository(d.cfg, d.logger, genAiClient)
		if err != nil {
			d.logger.Fatal("Failed to initialize Gemini AI repository", zap.Error(err))
		}
		inner = repo
	case common.ProviderCerebras, "":
		repo, err := repository.NewCerebrasAIRepository(d.cfg, d.logger)
		if err != nil {
			d.logger.Fatal("Failed to initialize Cerebras AI repository", zap.Error(err))
		}
		inner = repo
	default:
		d.logger.Fatal("Invalid AI provider specified in config", zap.String("provider", d.cfg.AI.Provider))
	}

	cacheTTL := 15 * time.Minute
	if d.cfg.AI.CacheTTL != "" {
		ttl, err := time.ParseDuration(d.cfg.AI.CacheTTL)
		if err != nil {
			d.logger.Fatal("Invalid AI cache TTL", zap.Error(err))
		}
		cacheTTL = ttl
	}
	return repository.NewCachedSentimentRepository(inner, cacheTTL)
}

func parseThrottle(appLogger *logger.Logger, value string) time.Duration {
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		appLogger.Fatal("Invalid throttle duration", zap.Error(err))
	}
	return d
}

func runCandles(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, cleanup := mustBootstrap()
	defer cleanup()

	d.logger.Info("Starting candle import", zap.String("name", d.cfg.App.Name))

	dir := candlesDir
	if dir == "" {
		dir = d.cfg.Candles.Dir
	}
	throttleValue := throttle
	if throttleValue == "" {
		throttleValue = d.cfg.Candles.Throttle
	}

	importer := newCandleImporter(d)
	results, err := importer.Import(ctx, service.CandleImportOptions{
		Dir:           dir,
		Tickers:       tickers,
		FromCompanies: fromCompanies,
		Throttle:      parseThrottle(d.logger, throttleValue),
	})
	if err != nil {
		d.logger.Fatal("Candle import failed", zap.Error(err))
	}

	d.logger.Info("Candle import finished", zap.Int("tickers", len(results)))
}

func runNews(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, cleanup := mustBootstrap()
	defer cleanup()

	d.logger.Info("Starting news import", zap.String("name", d.cfg.App.Name))

	lookback := days
	if lookback <= 0 {
		lookback = d.cfg.News.Days
	}
	maxPer := maxPerCompany
	if maxPer <= 0 {
		maxPer = d.cfg.News.MaxPerCompany
	}
	throttleValue := throttle
	if throttleValue == "" {
		throttleValue = d.cfg.News.Throttle
	}

	importer := newNewsImporter(ctx, d)
	results, err := importer.Import(ctx, service.NewsImportOptions{
		Days:          lookback,
		Tickers:       tickers,
		FromCompanies: fromCompanies,
		MaxPerCompany: maxPer,
		Throttle:      parseThrottle(d.logger, throttleValue),
	})
	if err != nil {
		d.logger.Fatal("News import failed", zap.Error(err))
	}

	d.logger.Info("News import finished", zap.Int("tickers", len(results)))
}

func runSchedule(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, cleanup := mustBootstrap()
	defer cleanup()

	candleImporter := newCandleImporter(d)
	newsImporter := newNewsImporter(ctx, d)

	candleOpts := service.CandleImportOptions{
		Dir:           d.cfg.Candles.Dir,
		FromCompanies: true,
		Throttle:      parseThrottle(d.logger, d.cfg.Candles.Throttle),
	}
	newsOpts := service.NewsImportOptions{
		Days:          d.cfg.News.Days,
		FromCompanies: true,
		MaxPerCompany: d.cfg.News.MaxPerCompany,
		Throttle:      parseThrottle(d.logger, d.cfg.News.Throttle),
	}

	c := cron.New()

	if expr := d.cfg.Schedule.CandlesCron; expr != "" {
		if _, err := c.AddFunc(expr, func() {
			if _, err := candleImporter.Import(ctx, candleOpts); err != nil {
				d.logger.Error("Scheduled candle import failed", zap.Error(err))
			}
		}); err != nil {
			d.logger.Fatal("Invalid candles cron expression", zap.Error(err))
		}
	}
	if expr := d.cfg.Schedule.NewsCron; expr != "" {
		if _, err := c.AddFunc(expr, func() {
			if _, err := newsImporter.Import(ctx, newsOpts); err != nil {
				d.logger.Error("Scheduled news import failed", zap.Error(err))
			}
		}); err != nil {
			d.logger.Fatal("Invalid news cron expression", zap.Error(err))
		}
	}

	if len(c.Entries()) == 0 {
		d.logger.Fatal("No cron schedules configured")
	}

	d.logger.Info("Scheduler started", zap.Int("entries", len(c.Entries())))
	c.Start()

	<-ctx.Done()

	d.logger.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	d.logger.Info("Scheduler stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "ingestion-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-ingestion.yaml", "Path to the configuration file")

	candlesCmd.Flags().StringVar(&candlesDir, "dir", "", "Directory containing <TICKER>_1h_7d.json files (defaults to config)")
	candlesCmd.Flags().StringSliceVar(&tickers, "tickers", nil, "Tickers to import (comma separated)")
	candlesCmd.Flags().BoolVar(&fromCompanies, "from-companies", false, "Import every active company")
	candlesCmd.Flags().StringVar(&throttle, "throttle", "", "Pause between tickers, e.g. 300ms (defaults to config)")

	newsCmd.Flags().StringSliceVar(&tickers, "tickers", nil, "Tickers to import (comma separated)")
	newsCmd.Flags().BoolVar(&fromCompanies, "from-companies", false, "Import every active company")
	newsCmd.Flags().IntVar(&days, "days", 0, "Lookback window in days (defaults to config)")
	newsCmd.Flags().IntVar(&maxPerCompany, "max", 0, "Cap on articles per company (defaults to config)")
	newsCmd.Flags().StringVar(&throttle, "throttle", "", "Pause between tickers, e.g. 300ms (defaults to config)")

	rootCmd.AddCommand(candlesCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(scheduleCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ingestion-service CLI: %s\n", err)
		os.Exit(1)
	}
}
