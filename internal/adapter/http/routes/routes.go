package routes

import (
	"context"
	"log"
	"strconv"

	_ "webpay_billing/docs" // This will be auto-generated
	"webpay_billing/internal/adapter/http/handlers"
	repository2 "webpay_billing/internal/adapter/persistence/repository"
	"webpay_billing/internal/config"
	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/infrastructure/database"
	"webpay_billing/internal/infrastructure/metrics"
	"webpay_billing/internal/infrastructure/payments"
	"webpay_billing/internal/infrastructure/payments/webpay"
	"webpay_billing/internal/usecase"
	"webpay_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	reg := metrics.NewRegistry()
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	getRoutes(cfg, reg)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, reg prometheus.Registerer) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	sourceRepo := repository2.NewPaymentSourceDynamoRepository(ddb, cfg.PaymentSourcesTable)
	transactionRepo := repository2.NewPaymentTransactionDynamoRepository(ddb, cfg.PaymentTransactionsTable)

	gatewayMetrics := metrics.NewGatewayMetrics(reg)
	registry := payments.NewDefaultRegistry(payments.WithClientFactory(func(pc entities.PaymentMethodConfig) webpay.IClient {
		return metrics.InstrumentClient(payments.DefaultClientFactory(pc), gatewayMetrics)
	}))

	if cfg.WebPaySecretKey == "" {
		log.Printf("[payment] WEBPAY_SECRET_KEY not set; gateway calls will be rejected by WebPay")
	}
	log.Printf("[payment] method_type=%s api_base=%s available=%v", cfg.PaymentMethodType, cfg.WebPayAPIBase, registry.MethodTypes())

	// One adapter per request: it caches the gateway client and account capabilities.
	newMethod := func() (interfaces.IPaymentMethod, error) {
		return registry.New(cfg.PaymentMethodType, cfg.PaymentMethod())
	}

	sourceUseCase := usecase.NewPaymentSourceUseCase(sourceRepo, newMethod)
	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, sourceRepo, newMethod)

	sourceHandler := handlers.NewPaymentSourceHandler(sourceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSourceRoutes(v1, sourceHandler)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
