package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/shambadirect/agrimarket/internal/catalog"
	"github.com/shambadirect/agrimarket/internal/market"
	"github.com/shambadirect/agrimarket/internal/notify"
	"github.com/shambadirect/agrimarket/internal/session"
)

const orderEventsTopic = "orders.events"

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
	logger := watermill.NewSlogLogger(slog.Default())

	// --- Catalog ---
	var products []catalog.Product
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := initDB(dsn)
		if err != nil {
			slog.Error("Failed to init database", "err", err)
			os.Exit(1)
		}
		defer db.Close()

		products, err = loadCatalog(db)
		if err != nil {
			slog.Error("Failed to load catalog", "err", err)
			os.Exit(1)
		}
	} else {
		products = catalog.Seed()
		slog.Info("Using built-in catalog", "products", len(products))
	}
	index := catalog.NewIndex(products)

	// --- Event plumbing ---
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	eventBus, err := cqrs.NewEventBusWithConfig(pubSub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return orderEventsTopic, nil
		},
		Marshaler: cqrs.JSONMarshaler{},
		Logger:    logger,
	})
	if err != nil {
		slog.Error("Failed to create event bus", "err", err)
		os.Exit(1)
	}

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		slog.Error("Failed to create router", "err", err)
		os.Exit(1)
	}

	feed := notify.NewFeed()

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return orderEventsTopic, nil
		},
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return pubSub, nil
		},
		Marshaler: cqrs.JSONMarshaler{},
		Logger:    logger,
	})
	if err != nil {
		slog.Error("Failed to create event processor", "err", err)
		os.Exit(1)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler("NotifyOrderPlaced", feed.OnOrderPlaced),
		cqrs.NewEventHandler("NotifyOrderStatusChanged", feed.OnOrderStatusChanged),
	)
	if err != nil {
		slog.Error("Failed to register event handlers", "err", err)
		os.Exit(1)
	}

	// Forward order events to Kafka for the fulfillment side, when brokers
	// are configured.
	if brokersEnv := os.Getenv("KAFKA_BROKERS"); brokersEnv != "" {
		brokers := strings.Split(brokersEnv, ",")
		if err := addKafkaForwarder(router, pubSub, brokers, logger); err != nil {
			slog.Error("Failed to set up Kafka forwarder", "err", err)
			os.Exit(1)
		}
		slog.Info("Kafka forwarding enabled", "brokers", brokers)
	}

	// --- Session ---
	sess := session.New(getEnv("SESSION_USER", "demo-farmer"), eventBus)

	// --- HTTP API ---
	api := &API{
		index:       index,
		session:     sess,
		board:       market.NewBoard(),
		feed:        feed,
		shippingFee: getEnvInt64("SHIPPING_FEE", 500),
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    getEnv("HTTP_ADDR", ":8080"),
		Handler: enableCORS(mux),
	}

	// --- Start everything ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := router.Run(ctx); err != nil {
			slog.Error("Message router error", "err", err)
			cancel()
		}
	}()

	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid numeric env value", "key", key, "value", val)
		return fallback
	}
	return n
}
