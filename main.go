package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"negotiation-api/config"
	"negotiation-api/controller"
	"negotiation-api/dao"
	"negotiation-api/db"
	"negotiation-api/pkg/auth"
	"negotiation-api/pkg/events"
	"negotiation-api/usecase"
)

func main() {
	// Monetary fields are plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// 1. Storage
	var productRepo usecase.ProductRepository
	var negotiationRepo usecase.NegotiationRepository
	switch cfg.Storage.Driver {
	case "mysql":
		conn, err := sql.Open("mysql", cfg.Storage.MySQL.DSN())
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			logger.Fatal("connect to database", zap.Error(err))
		}
		if err := db.Migrate(conn); err != nil {
			logger.Fatal("migrate database", zap.Error(err))
		}
		productRepo = dao.NewProductRepository(conn)
		negotiationRepo = dao.NewNegotiationRepository(conn)
		logger.Info("using MySQL storage", zap.String("database", cfg.Storage.MySQL.Database))
	default:
		products := dao.NewMemoryProductRepository()
		negotiations := dao.NewMemoryNegotiationRepository()
		if err := dao.Seed(products, negotiations); err != nil {
			logger.Fatal("seed memory storage", zap.Error(err))
		}
		productRepo = products
		negotiationRepo = negotiations
		logger.Info("using in-memory storage")
	}

	// 2. Events
	var publisher usecase.EventPublisher = events.NoopPublisher{}
	if cfg.Events.AMQPURL != "" {
		rabbit, err := events.NewRabbitPublisher(events.Config{
			URL:      cfg.Events.AMQPURL,
			Exchange: cfg.Events.Exchange,
		})
		if err != nil {
			logger.Fatal("connect to RabbitMQ", zap.Error(err))
		}
		defer rabbit.Close()
		publisher = rabbit
		logger.Info("event publishing enabled", zap.String("exchange", cfg.Events.Exchange))
	}

	// 3. Auth
	tokens := cfg.Auth.StaffTokens
	if len(tokens) == 0 {
		token := auth.NewToken()
		tokens = []string{token}
		logger.Warn("no staff tokens configured, generated one for this run",
			zap.String("token", token))
	}
	verifier := auth.NewVerifier(tokens)

	// 4. Dependency injection
	productUsecase := usecase.NewProductUsecase(productRepo, publisher, logger)
	negotiationUsecase := usecase.NewNegotiationUsecase(negotiationRepo, productRepo, publisher, logger)
	productController := controller.NewProductController(productUsecase, verifier)
	negotiationController := controller.NewNegotiationController(negotiationUsecase, verifier)

	// 5. Routing + start
	router := controller.NewRouter(productController, negotiationController, logger)
	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
