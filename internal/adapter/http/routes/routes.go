package routes

import (
	"context"
	"log"

	_ "pandit_booking/docs"
	"pandit_booking/internal/adapter/http/handlers"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/adapter/persistence/memory"
	"pandit_booking/internal/adapter/persistence/repository"
	"pandit_booking/internal/config"
	"pandit_booking/internal/infrastructure/cache"
	"pandit_booking/internal/infrastructure/database"
	"pandit_booking/internal/infrastructure/payments"
	"pandit_booking/internal/usecase"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Repositories is the storage the use cases run on.
type Repositories struct {
	Users           interfaces.IUserRepository
	Pandits         interfaces.IPanditRepository
	PujaTypes       interfaces.IPujaTypeRepository
	Bookings        interfaces.IBookingRepository
	Payments        interfaces.IPaymentRepository
	Consultations   interfaces.IConsultationRepository
	VirtualSessions interfaces.IVirtualSessionRepository
}

// Run will start the server
func Run(cfg config.Config) {
	ctx := context.Background()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repos, err := NewRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	router := NewRouter(cfg, repos, newPaymentGateway(cfg.Payment), newWebhookDeduplicator(ctx, cfg.Redis))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRepositories selects the storage driver. The memory driver keeps nothing
// across restarts and is meant for local runs and tests.
func NewRepositories(ctx context.Context, cfg config.Config) (Repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[routes][storage] using in-memory store")
		store := memory.NewStore()
		return Repositories{
			Users:           store.Users(),
			Pandits:         store.Pandits(),
			PujaTypes:       store.PujaTypes(),
			Bookings:        store.Bookings(),
			Payments:        store.Payments(),
			Consultations:   store.Consultations(),
			VirtualSessions: store.VirtualSessions(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{
		Users:           repository.NewUserDynamoRepository(ddb),
		Pandits:         repository.NewPanditDynamoRepository(ddb),
		PujaTypes:       repository.NewPujaTypeDynamoRepository(ddb),
		Bookings:        repository.NewBookingDynamoRepository(ddb),
		Payments:        repository.NewPaymentDynamoRepository(ddb),
		Consultations:   repository.NewConsultationDynamoRepository(ddb),
		VirtualSessions: repository.NewVirtualSessionDynamoRepository(ddb),
	}, nil
}

// NewRouter wires use cases and handlers. gateway and dedup may be nil.
func NewRouter(cfg config.Config, repos Repositories, gateway interfaces.IPaymentGateway, dedup handlers.WebhookDeduplicator) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bookingUseCase := usecase.NewBookingUseCase(repos.Bookings, repos.PujaTypes, repos.Pandits)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Bookings, repos.Users, gateway, usecase.PaymentSettings{
		KeyID:          cfg.Payment.RazorpayKeyID,
		KeySecret:      cfg.Payment.RazorpayKeySecret,
		Currency:       cfg.Payment.Currency,
		GatewayTimeout: cfg.Payment.GatewayTimeout,
	})
	panditUseCase := usecase.NewPanditUseCase(repos.Pandits, repos.Users)
	pujaTypeUseCase := usecase.NewPujaTypeUseCase(repos.PujaTypes)
	consultationUseCase := usecase.NewConsultationUseCase(repos.Consultations, repos.Pandits)
	adminUseCase := usecase.NewAdminUseCase(repos.Users, repos.Pandits, repos.Bookings, repos.Payments, repos.VirtualSessions)

	h := apiHandlers{
		bookings:      handlers.NewBookingHandler(bookingUseCase),
		payments:      handlers.NewPaymentHandler(paymentUseCase, cfg.Payment.RazorpayWebhookSecret, dedup),
		pandits:       handlers.NewPanditHandler(panditUseCase),
		pujas:         handlers.NewPujaTypeHandler(pujaTypeUseCase),
		consultations: handlers.NewConsultationHandler(consultationUseCase),
		admin:         handlers.NewAdminHandler(adminUseCase),
	}

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)

	authenticated := v1.Group("", middleware.Authenticate(cfg.JWTSecret))
	addAuthenticatedRoutes(authenticated, h)
	addAdminRoutes(authenticated, h)

	return router
}

func newPaymentGateway(cfg config.PaymentConfig) interfaces.IPaymentGateway {
	gateway, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.GatewayMock)
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func newWebhookDeduplicator(ctx context.Context, cfg config.RedisConfig) handlers.WebhookDeduplicator {
	if cfg.Addr == "" {
		return nil
	}
	client, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("Redis unavailable, webhook de-duplication disabled: %v", err)
		return nil
	}
	return cache.NewWebhookDeduplicator(client, cfg.DedupTTL)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
