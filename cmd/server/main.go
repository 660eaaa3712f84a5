package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tukangku/server/internal/pkg/config"
	"github.com/tukangku/server/internal/pkg/database"
	"github.com/tukangku/server/internal/pkg/health"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/middleware"
	natspkg "github.com/tukangku/server/internal/pkg/nats"
	wspkg "github.com/tukangku/server/internal/pkg/websocket"

	bookingsHandler "github.com/tukangku/server/services/bookings/handler"
	bookingsHTTP "github.com/tukangku/server/services/bookings/handler/http"
	bookingsGateway "github.com/tukangku/server/services/bookings/gateway"
	bookingsRepo "github.com/tukangku/server/services/bookings/repository"
	bookingsUC "github.com/tukangku/server/services/bookings/usecase"
	chatHandler "github.com/tukangku/server/services/chat/handler"
	chatHTTP "github.com/tukangku/server/services/chat/handler/http"
	chatNATS "github.com/tukangku/server/services/chat/handler/nats"
	chatWS "github.com/tukangku/server/services/chat/handler/websocket"
	chatGateway "github.com/tukangku/server/services/chat/gateway"
	chatRepo "github.com/tukangku/server/services/chat/repository"
	chatUC "github.com/tukangku/server/services/chat/usecase"
	paymentsHandler "github.com/tukangku/server/services/payments/handler"
	paymentsHTTP "github.com/tukangku/server/services/payments/handler/http"
	processorGateway "github.com/tukangku/server/services/payments/gateway/http"
	paymentsUC "github.com/tukangku/server/services/payments/usecase"
	usersHandler "github.com/tukangku/server/services/users/handler"
	usersHTTP "github.com/tukangku/server/services/users/handler/http"
	usersGateway "github.com/tukangku/server/services/users/gateway"
	usersRepo "github.com/tukangku/server/services/users/repository"
	usersUC "github.com/tukangku/server/services/users/usecase"
)

func main() {
	appName := "tukangku-server"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	userRepository := usersRepo.NewUserRepository(configs, postgresClient.GetDB())
	bookingRepository := bookingsRepo.NewBookingRepository(configs, postgresClient.GetDB())
	messageRepository := chatRepo.NewMessageRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	userGW := usersGateway.NewUserGW(natsClient, configs.Services.GeoServiceURL)
	bookingGW := bookingsGateway.NewBookingGW(natsClient)
	chatGW := chatGateway.NewChatGW(natsClient)
	processorClient := processorGateway.NewProcessorClient(configs.Payment, redisClient)

	// Initialize usecases
	userUsecase := usersUC.NewUserUC(userRepository, userGW, configs)
	bookingUsecase := bookingsUC.NewBookingUC(bookingRepository, bookingGW, messageRepository, userRepository, configs)
	paymentUsecase := paymentsUC.NewPaymentUC(processorClient, bookingRepository, userRepository, configs)
	chatUsecase := chatUC.NewChatUC(messageRepository, chatGW, configs)

	// WebSocket manager shared by the chat handlers
	manager := wspkg.NewManager(configs.JWT)

	// Initialize handlers
	userHandlers := usersHandler.NewHandler(
		usersHTTP.NewAuthHandler(userUsecase),
		usersHTTP.NewProviderHandler(userUsecase),
		usersHTTP.NewCustomerHandler(userUsecase),
		configs,
	)
	bookingHandlers := bookingsHandler.NewHandler(bookingsHTTP.NewBookingHandler(bookingUsecase), configs)
	paymentHandlers := paymentsHandler.NewHandler(paymentsHTTP.NewPaymentHandler(paymentUsecase), configs)
	chatHandlers := chatHandler.NewHandler(
		chatHTTP.NewChatHandler(chatUsecase),
		chatWS.NewChatWSHandler(chatUsecase, manager),
		chatNATS.NewNatsHandler(natsClient, manager),
		configs,
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints with dependency probes for readiness
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Probe: func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		}},
		health.Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		}},
		health.Check{Name: "nats", Probe: func(ctx context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return fmt.Errorf("nats connection lost")
			}
			return nil
		}},
	)

	// Register service routes
	userHandlers.RegisterRoutes(e)
	bookingHandlers.RegisterRoutes(e)
	paymentHandlers.RegisterRoutes(e)
	if err := chatHandlers.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
