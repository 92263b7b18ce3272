package main

import (
	"fmt"
	"log"

	_ "sofdesk/docs"
	"sofdesk/internal/alerts/noop"
	"sofdesk/internal/alerts/ses"
	"sofdesk/internal/config"
	"sofdesk/internal/extract"
	"sofdesk/internal/handler"
	"sofdesk/internal/llm"
	"sofdesk/internal/port"
	"sofdesk/internal/repository/postgres"
	"sofdesk/internal/router"
	"sofdesk/internal/service"
	"sofdesk/internal/sof"
	s3storage "sofdesk/internal/storage/s3"
	"sofdesk/internal/weather"
)

// @title SOFDESK API
// @version 1.0
// @description Statement of Facts parsing and laytime operations for the chartering desk.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	sofRepo := postgres.NewSOFRecordRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	voyageRepo := postgres.NewVoyageRepo(db)
	chatRepo := postgres.NewChatRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Storage and document extraction
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	extractor := extract.New()

	// Alert delivery
	var alertSender port.AlertSender
	switch cfg.Alerts.Provider {
	case "ses":
		alertSender, err = ses.NewSESSender(cfg.Alerts.Region, cfg.Alerts.FromAddress, cfg.Alerts.ToAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		alertSender = noop.NewNoopSender()
	}

	// Language model providers; the desk runs without one, chat then
	// answers from the specialist agents only.
	var primary, secondary port.LLMClient
	if cfg.LLM.Primary.Provider != "" {
		primary, err = llm.NewClient(&cfg.LLM.Primary)
		if err != nil {
			return fmt.Errorf("failed to initialize primary LLM provider: %w", err)
		}
	} else {
		log.Printf("no LLM provider configured; chat runs on specialist agents only")
	}
	if sc := cfg.LLM.SecondaryConfig(); sc != nil {
		secondary, err = llm.NewClient(sc)
		if err != nil {
			return fmt.Errorf("failed to initialize secondary LLM provider: %w", err)
		}
	}

	weatherClient := weather.NewClient(cfg.Weather)

	rates := sof.Rates{
		DemurragePerDay: cfg.Rates.DemurragePerDay,
		DespatchPerDay:  cfg.Rates.DespatchPerDay,
		Supplied:        cfg.Rates.Supplied,
	}
	parser := sof.NewParser(sof.DefaultPatternTable(), rates)

	// Services
	authSvc := service.NewAuthService(cfg.JWT)
	sofSvc := service.NewSOFService(sofRepo, fileRepo, s3Client, extractor, alertSender, parser, rates, &cfg.S3)
	voyageSvc := service.NewVoyageService(voyageRepo)
	chatSvc := service.NewChatService(chatRepo, weatherClient, primary, secondary)
	explainSvc := service.NewExplainService(primary, secondary)
	statsSvc := service.NewStatsService(statsRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	sofH := handler.NewSOFHandler(sofSvc, explainSvc)
	voyageH := handler.NewVoyageHandler(voyageSvc)
	chatH := handler.NewChatHandler(chatSvc)
	lookupH := handler.NewLookupHandler(weatherClient)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, authH, sofH, voyageH, chatH, lookupH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
