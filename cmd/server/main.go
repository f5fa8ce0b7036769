package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ticketee/config"
	"ticketee/internal/cache"
	"ticketee/internal/database"
	"ticketee/internal/handler"
	"ticketee/internal/identity"
	"ticketee/internal/metrics"
	"ticketee/internal/queue"
	"ticketee/internal/repository"
	"ticketee/internal/service"
	"ticketee/internal/storage"
	"ticketee/internal/worker"
	"ticketee/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.L.Warn("invalid log level, keeping default", zap.String("level", cfg.LogLevel))
	}
	defer func() { _ = logger.L.Sync() }()
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	s3Client, err := storage.InitS3(ctx, &cfg.S3)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	objectStore := storage.NewS3ObjectStore(s3Client, &cfg.S3)
	if err := objectStore.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to prepare media bucket", zap.String("bucket", cfg.S3.Bucket), zap.Error(err))
	}

	var ticketQueue queue.TicketQueue
	if cfg.Ticket.QueueStream {
		ticketQueue, err = queue.NewRedisStreamTicketQueue(ctx, rdb, "ticketee-"+uuid.NewString(), nil)
		if err != nil {
			log.Fatal("Failed to initialize ticket queue", zap.Error(err))
		}
	} else {
		ticketQueue = queue.NewMemoryTicketQueue(1024, nil)
	}

	eventRepo := repository.NewEventRepository(pool)
	ticketTypeRepo := repository.NewTicketTypeRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	transactor := repository.NewTransactor(pool)
	inventory := cache.NewTicketInventoryManager(rdb)
	progress := cache.NewProgressStore(rdb, cfg.Creation.ProgressTTL)
	principals := identity.NewContextProvider()

	creationService := service.NewCreationService(principals, eventRepo, ticketTypeRepo, objectStore, progress, service.CreationOptions{
		MaxParallelUploads: cfg.Creation.MaxParallelUploads,
		MaxParallelTickets: cfg.Creation.MaxParallelTickets,
	})
	eventService := service.NewEventService(principals, eventRepo, ticketTypeRepo, objectStore, inventory, cfg.Ticket.MaxPerUser)
	ticketService := service.NewTicketService(principals, eventRepo, ticketTypeRepo, ticketRepo, transactor, inventory, ticketQueue)

	workerDone, err := worker.NewTicketWorker(ticketService, ticketQueue).Start(ctx)
	if err != nil {
		log.Fatal("Failed to start ticket worker", zap.Error(err))
	}

	if err := handler.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	router.Use(gin.Recovery(), handler.RequestLogger(), handler.Authenticate(identity.NewTokenParser(cfg.Auth.JWTSecret, cfg.Auth.Issuer)))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.NewCreationHandler(creationService, cfg.Server.MaxUploadBytes).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("ticket worker did not stop in time")
	}
}
