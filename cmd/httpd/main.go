// Command httpd runs the leadgate HTTP server: the public lead intake
// form endpoint, the classification API and the metrics endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/inlethq/leadgate/internal/api"
	"github.com/inlethq/leadgate/internal/classifier"
	"github.com/inlethq/leadgate/internal/config"
	"github.com/inlethq/leadgate/internal/database"
	"github.com/inlethq/leadgate/internal/dedupe"
	"github.com/inlethq/leadgate/internal/docstore"
	"github.com/inlethq/leadgate/internal/domain"
	"github.com/inlethq/leadgate/internal/leadlog"
	"github.com/inlethq/leadgate/internal/logger"
	"github.com/inlethq/leadgate/internal/mailer"
	"github.com/inlethq/leadgate/internal/notify"
	"github.com/inlethq/leadgate/internal/pipeline"
	"github.com/inlethq/leadgate/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "leadgate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting leadgate",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	tel := telemetry.NewProvider()

	rules, err := loadRules(cfg, log)
	if err != nil {
		return err
	}
	engine, err := classifier.NewEngine(rules)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	leadLog, err := leadlog.Open(cfg.LeadLog.Path)
	if err != nil {
		return fmt.Errorf("open lead log: %w", err)
	}
	defer leadLog.Close()

	pl := &pipeline.Pipeline{
		Store: leadLog,
		Notifier: notify.NewWebhookNotifier(
			cfg.Notify.WebhookURL,
			cfg.Notify.Timeout,
			cfg.Notify.MaxAttempts,
			log,
		),
		Telemetry: tel,
		Logger:    log,
	}

	if cfg.Elasticsearch.Enabled() {
		esClient, err := es.NewClient(es.Config{
			Addresses: []string{cfg.Elasticsearch.URL},
			Username:  cfg.Elasticsearch.Username,
			Password:  cfg.Elasticsearch.Password,
		})
		if err != nil {
			return fmt.Errorf("create elasticsearch client: %w", err)
		}
		pl.Archive = docstore.NewArchive(esClient, cfg.Elasticsearch.Index)
		log.Info("lead archive enabled", logger.String("index", cfg.Elasticsearch.Index))
	} else {
		log.Info("lead archive disabled")
	}

	if cfg.Mailer.Enabled() {
		pl.Ack = mailer.NewClient(mailer.Config{
			URL:     cfg.Mailer.URL,
			APIKey:  cfg.Mailer.APIKey,
			From:    cfg.Mailer.From,
			Subject: cfg.Mailer.Subject,
			Body:    cfg.Mailer.Body,
			Timeout: cfg.Mailer.Timeout,
		}, log)
		log.Info("auto-acknowledgment enabled")
	} else {
		log.Info("auto-acknowledgment disabled")
	}

	if cfg.Redis.Enabled() {
		redisClient, err := dedupe.NewClient(
			context.Background(),
			cfg.Redis.URL,
			cfg.Redis.Password,
			cfg.Redis.Database,
		)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisClient.Close()
		pl.Duplicates = dedupe.New(redisClient, cfg.Redis.DuplicateWindow)
		log.Info("duplicate detection enabled",
			logger.Duration("window", cfg.Redis.DuplicateWindow))
	} else {
		log.Info("duplicate detection disabled")
	}

	handler := api.NewHandler(engine, pl, tel, log, cfg.Service.Name, cfg.Service.Version)
	router := api.NewRouter(handler, cfg, tel)
	server := api.NewServer(router, cfg)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server listening", logger.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("shutdown started", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	log.Info("shutdown complete")
	return nil
}

// loadRules prefers the signal-rules database when one is configured
// and its table is populated, falling back to the built-in tables.
func loadRules(cfg *config.Config, log logger.Logger) (domain.RuleSet, error) {
	if !cfg.Database.Enabled() {
		log.Info("using built-in signal rules")
		return classifier.DefaultRuleSet(), nil
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return domain.RuleSet{}, fmt.Errorf("connect rules database: %w", err)
	}
	defer db.Close()

	rs, err := database.NewSignalRulesRepository(db).LoadRuleSet(context.Background())
	if err != nil {
		return domain.RuleSet{}, fmt.Errorf("load signal rules: %w", err)
	}
	if rs == nil {
		log.Warn("signal rules table is empty, using built-in rules")
		return classifier.DefaultRuleSet(), nil
	}

	log.Info("loaded signal rules from database",
		logger.Int("high", len(rs.HighSignals)),
		logger.Int("low", len(rs.LowSignals)))
	return *rs, nil
}
