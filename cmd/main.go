package main

import (
	"context"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/whiskeynotes/go-whiskey-api/pkg/catalog"
	"github.com/whiskeynotes/go-whiskey-api/pkg/data"
	"github.com/whiskeynotes/go-whiskey-api/pkg/db"
	appHandlers "github.com/whiskeynotes/go-whiskey-api/pkg/handlers"
	"github.com/whiskeynotes/go-whiskey-api/pkg/helpers"
	"github.com/whiskeynotes/go-whiskey-api/pkg/middleware"
	"github.com/whiskeynotes/go-whiskey-api/pkg/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	mongoClient, err := db.ConnectDB(helpers.GetGoDotEnv("MONGODB_URI"))
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	redisClient, err := db.ConnectRedis(
		helpers.GetGoDotEnvDefault("REDIS_ADDR", "localhost:6379"),
		helpers.GetGoDotEnv("REDIS_PASSWORD"),
	)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	logger.Info("connected to Redis")

	whiskeyColl := db.GetCollection(mongoClient, helpers.GetGoDotEnvDefault("MONGO_DB", "whiskeynotes"), "whiskeys")
	whiskeyCatalog := catalog.NewMongoCatalog(whiskeyColl, logger)

	// Optional initial seed of an empty catalog
	if helpers.GetGoDotEnv("SEED_ON_START") == "true" {
		if err := whiskeyCatalog.Seed(context.Background(), data.SampleWhiskeys()); err != nil {
			logger.Error("seeding catalog failed", zap.Error(err))
		}
	}

	reviewStore := store.New(redisClient)
	ownerGate := middleware.NewOwnerGate(helpers.GetGoDotEnv("OWNER_TOKEN"))
	h := appHandlers.New(whiskeyCatalog, reviewStore, ownerGate, logger)

	// cors
	headersOk := gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Owner-Token", "Accept", "Accept-Language", "Origin"})
	originOk := gorillaHandlers.AllowedOrigins([]string{helpers.GetGoDotEnvDefault("CORS_ORIGIN", "http://localhost:3000")})
	methodsOk := gorillaHandlers.AllowedMethods([]string{"PUT", "POST", "GET", "DELETE", "OPTIONS"})

	port := helpers.GetGoDotEnvDefault("PORT", "5000")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: gorillaHandlers.CORS(originOk, headersOk, methodsOk)(routes(h, ownerGate, logger)),
	}

	logger.Info("server is up", zap.String("port", port))
	err = srv.ListenAndServe()

	mongoClient.Disconnect(context.Background())
	redisClient.Close()
	logger.Fatal("server stopped", zap.Error(err))
}
