package routes

import (
	"os"
	"strconv"

	_ "tripbudget/docs" // swag-generated
	"tripbudget/internal/adapter/http/handlers"
	"tripbudget/internal/adapter/persistence/repository"
	"tripbudget/internal/infrastructure/database"
	"tripbudget/internal/infrastructure/events"
	"tripbudget/internal/infrastructure/payments"
	"tripbudget/internal/infrastructure/providers"
	"tripbudget/internal/usecase"
	"tripbudget/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	logger := newLogger()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start the application")
	}
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "tripbudget").Logger()
}

func getRoutes(logger zerolog.Logger) {
	ddb := database.ConnectDynamoDB(logger)

	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	reconstructionHistoryRepo := repository.NewReconstructionHistoryDynamoRepository(ddb)
	approvalHistoryRepo := repository.NewApprovalHistoryDynamoRepository(ddb)
	depositRepo := repository.NewDepositDynamoRepository(ddb)

	natsConn, err := events.ConnectNATS(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("event streaming disabled")
	}
	eventPublisher := events.NewNatsEventPublisher(natsConn, logger)

	var providerGateway interfaces.IProviderGateway
	httpProvider, err := providers.NewHTTPProviderGateway(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("provider gateway not configured; alternative search disabled")
	} else {
		providerGateway = httpProvider
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	cfg := usecase.ConfigFromEnv()

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, eventPublisher)
	sessionManager := usecase.NewSessionStateManager(cfg, logger)
	reconstructor := usecase.NewBudgetReconstructor(providerGateway, cfg, logger)
	reconstructionManager := usecase.NewReconstructionManager(budgetRepo, reconstructionHistoryRepo, reconstructor, sessionManager, eventPublisher, logger)
	stabilityGuard := usecase.NewStabilityGuard(sessionManager, eventPublisher, cfg, logger)
	budgetValidator := usecase.NewBudgetValidator(cfg)
	approvalWorkflow := usecase.NewApprovalWorkflow(budgetRepo, approvalHistoryRepo, budgetValidator, eventPublisher, logger)
	depositUseCase := usecase.NewDepositUseCase(depositRepo, budgetRepo, paymentGateway, logger)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	reconstructionHandler := handlers.NewReconstructionHandler(reconstructionManager)
	approvalHandler := handlers.NewApprovalHandler(approvalWorkflow)
	depositHandler := handlers.NewDepositHandler(depositUseCase)
	sessionHandler := handlers.NewSessionHandler(budgetUseCase, sessionManager, stabilityGuard)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, budgetHandler, reconstructionHandler, approvalHandler, depositHandler)
	addSessionRoutes(v1, sessionHandler)
}

func setMiddlewares(logger zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
