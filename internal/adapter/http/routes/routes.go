package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "socis_remeses/docs" // generated by swag init
	request "socis_remeses/internal/adapter/http/dto/request"
	"socis_remeses/internal/adapter/http/handlers"
	"socis_remeses/internal/adapter/export"
	"socis_remeses/internal/adapter/persistence/memory"
	"socis_remeses/internal/adapter/persistence/repository"
	"socis_remeses/internal/adapter/sepaxml"
	"socis_remeses/internal/config"
	"socis_remeses/internal/infrastructure/database"
	"socis_remeses/internal/infrastructure/directory"
	"socis_remeses/internal/infrastructure/logging"
	"socis_remeses/internal/infrastructure/storage"
	"socis_remeses/internal/observability/metrics"
	"socis_remeses/internal/usecase"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics.Init()

	router, err := NewRouter(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to wire the application", zap.Error(err))
	}

	logger.Info("server starting",
		zap.Int("port", cfg.ServerPort),
		zap.String("store", cfg.StoreBackend),
		zap.String("documents", cfg.DocumentBackend),
		zap.Bool("member_directory", cfg.HasMemberDirectory()))
	if err := router.Run(":" + strconv.Itoa(cfg.ServerPort)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires repositories, use cases and handlers for cfg and mounts them
// on a new engine.
func NewRouter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	request.RegisterValidators()

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMemberRoutes(v1, app.members, app.mandates)
	addMandateRoutes(v1, app.mandates)
	addQuoteRoutes(v1, app.quotes)
	addRemittanceRoutes(v1, app.remittances)
	addReceiptRoutes(v1, app.receipts)
	return router, nil
}

type application struct {
	members     *handlers.MemberHandler
	mandates    *handlers.MandateHandler
	quotes      *handlers.QuoteHandler
	remittances *handlers.RemittanceHandler
	receipts    *handlers.ReceiptHandler
}

type stores struct {
	members     interfaces.IMemberRepository
	mandates    interfaces.IMandateRepository
	quotes      interfaces.IQuoteRepository
	remittances interfaces.IRemittanceRepository
	documents   interfaces.IDocumentStore
}

func buildApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*application, error) {
	st, err := newStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var memberDirectory interfaces.IMemberDirectory
	if cfg.HasMemberDirectory() {
		memberDirectory = directory.NewWebhookClient(cfg.MemberDirectoryURL)
	}

	codec := sepaxml.NewCodec()
	codec.InitiatingParty = cfg.Creditor.Name

	memberUseCase := usecase.NewMemberUseCase(st.members, memberDirectory, cfg.MemberListTTL, cfg.MemberDirectoryTTL, logger)
	mandateUseCase := usecase.NewMandateUseCase(st.mandates, st.members, st.remittances, st.quotes, logger)
	quoteUseCase := usecase.NewQuoteUseCase(st.quotes, st.members, st.mandates, st.remittances, logger)
	remittanceUseCase := usecase.NewRemittanceUseCase(st.remittances, st.quotes, st.members, st.mandates, codec, st.documents, logger)
	receiptUseCase := usecase.NewReceiptUseCase(st.remittances, st.quotes, st.members)
	exportUseCase := usecase.NewExportUseCase(st.remittances, receiptUseCase, export.Renderers(), logger)

	return &application{
		members:     handlers.NewMemberHandler(memberUseCase, logger),
		mandates:    handlers.NewMandateHandler(mandateUseCase),
		quotes:      handlers.NewQuoteHandler(quoteUseCase),
		remittances: handlers.NewRemittanceHandler(remittanceUseCase, exportUseCase, cfg.DefaultCreditor(), logger),
		receipts:    handlers.NewReceiptHandler(receiptUseCase),
	}, nil
}

func newStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	var (
		awsCfg    aws.Config
		awsLoaded bool
	)
	loadAWS := func() (aws.Config, error) {
		if awsLoaded {
			return awsCfg, nil
		}
		c, err := database.NewAWSConfigFromEnv(ctx)
		if err != nil {
			return aws.Config{}, err
		}
		awsCfg, awsLoaded = c, true
		return awsCfg, nil
	}

	st := &stores{}
	switch cfg.StoreBackend {
	case config.StoreDynamoDB:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		ddb := database.ConnectDynamoDB(c)
		st.members = repository.NewMemberDynamoRepository(ddb)
		st.mandates = repository.NewMandateDynamoRepository(ddb)
		st.quotes = repository.NewQuoteDynamoRepository(ddb)
		st.remittances = repository.NewRemittanceDynamoRepository(ddb)
	case config.StoreMemory:
		st.members = memory.NewMemberRepository()
		st.mandates = memory.NewMandateRepository()
		st.quotes = memory.NewQuoteRepository()
		st.remittances = memory.NewRemittanceRepository()
	default:
		return nil, fmt.Errorf("routes: unknown store backend %q", cfg.StoreBackend)
	}

	switch cfg.DocumentBackend {
	case config.DocumentsS3:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		st.documents = storage.NewS3Store(database.ConnectS3(c), cfg.DocumentsBucket, cfg.DocumentsPrefix)
	case config.DocumentsLocal:
		local, err := storage.NewLocalStore(cfg.DocumentDir)
		if err != nil {
			return nil, err
		}
		st.documents = local
	default:
		return nil, fmt.Errorf("routes: unknown document backend %q", cfg.DocumentBackend)
	}
	return st, nil
}
