package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"metrocontratos/cmd/internal/config"
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/domain/sqlite"
	"metrocontratos/cmd/internal/domain/sqlite/repository"
	"metrocontratos/cmd/internal/http/handler"
	authmiddleware "metrocontratos/cmd/internal/http/middleware"
	"metrocontratos/cmd/internal/infrastructure/aws/storage"
	"metrocontratos/cmd/internal/infrastructure/minhareceita"
	"metrocontratos/cmd/internal/infrastructure/pdf"
	"metrocontratos/cmd/internal/service"
	"metrocontratos/cmd/internal/service/jobs"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/uid"
	"metrocontratos/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.SetLevel(cfg.Level())

	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}
	uid.Init(cfg.NodeID)

	// Init SQLite
	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Init S3 client, optional in development
	var s3Client storage.S3Client
	if cfg.S3Bucket != "" {
		s3Client, err = storage.NewStorageClient(ctx, storage.Options{
			Region:  cfg.S3Region,
			Bucket:  cfg.S3Bucket,
			BaseURL: cfg.S3BaseURL,
		})
		if err != nil {
			log.Fatalf("failed to init storage client: %v", err)
		}
	} else {
		log.Warn("S3_BUCKET_NAME not set, contract uploads are disabled")
	}

	// Gettings repos
	settingsRepo := repository.NewSettingsRepository(db)
	clientRepo := repository.NewClientRepository(db)
	contractRepo := repository.NewContractRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Getting services
	companyService := service.NewCompanyService(settingsRepo, entity.DefaultCompanyProfile(), validate)
	clientService := service.NewClientService(clientRepo, validate)
	contractService := service.NewContractService(contractRepo, clientRepo, validate)
	documentService := service.NewDocumentService(
		contractService,
		document.NewAssembler(companyService),
		logoLoader(cfg, s3Client),
		s3Client,
	)
	miscService := service.NewMiscService(minhareceita.NewClient(cfg.RegistryURL), companyRepo)

	// Gettings handler
	utilRoutes := handler.NewUtilRoute(miscService)
	companyRoutes := handler.NewCompanyRoute(companyService)
	clientRoutes := handler.NewClientRoute(clientService)
	contractRoutes := handler.NewContractRoute(contractService, documentService)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uid.Token}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Errorf("[%s] %s %s %d %s: %v", v.RequestID, v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			log.Infof("[%s] %s %s %d %s", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Docker Compose healthcheck
	e.GET("/health", utilRoutes.Health)

	api := e.Group("/api")
	if cfg.JWKSURL != "" {
		if err := utils.InitJWKS(cfg.JWKSURL); err != nil {
			log.Fatalf("failed to init JWKS: %v", err)
		}
		api.Use(authmiddleware.NewAuthMiddleware(&authmiddleware.AuthMiddlewareConfig{}))
	} else {
		log.Warn("AUTH_JWKS_URL not set, API is unauthenticated")
	}

	api.GET("/contract-types", utilRoutes.GetContractTypes)
	api.GET("/lookup/cnpj/:cnpj", utilRoutes.GetCompany)

	// Company configuration
	api.GET("/company-profile", companyRoutes.GetProfile)
	api.PUT("/company-profile", companyRoutes.UpdateProfile)

	// Clients
	api.GET("/clients", clientRoutes.GetClients)
	api.GET("/clients/:id", clientRoutes.GetClient)
	api.POST("/clients", clientRoutes.CreateClient)
	api.PATCH("/clients/:id", clientRoutes.UpdateClient)
	api.DELETE("/clients/:id", clientRoutes.DeleteClient)

	// Contracts
	api.GET("/contracts", contractRoutes.GetContracts)
	api.GET("/contracts/:id", contractRoutes.GetContract)
	api.POST("/contracts", contractRoutes.CreateContract)
	api.PATCH("/contracts/:id", contractRoutes.UpdateContract)
	api.DELETE("/contracts/:id", contractRoutes.DeleteContract)
	api.GET("/contracts/:id/text", contractRoutes.GetText)
	api.GET("/contracts/:id/pdf", contractRoutes.GetPDF)
	api.POST("/contracts/:id/pdf", contractRoutes.UploadPDF)

	cleaner := jobs.NewCompanyCacheCleaner(companyRepo, cfg.CNPJCacheTTL, cfg.CNPJCacheSweep)
	go cleaner.Start(ctx)

	go func() {
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
}

func logoLoader(cfg *config.Config, s3Client storage.S3Client) service.LogoLoader {
	switch {
	case cfg.LogoPath != "":
		return pdf.FileLogo{Path: cfg.LogoPath}
	case cfg.LogoKey != "" && s3Client != nil:
		return service.StoredLogo{Storage: s3Client, Key: cfg.LogoKey}
	default:
		return nil
	}
}
