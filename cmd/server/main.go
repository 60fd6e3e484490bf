package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/defective-development/ehswellnessbingo/internal/infra"
	"github.com/defective-development/ehswellnessbingo/internal/repository"
	filestore "github.com/defective-development/ehswellnessbingo/internal/repository/file"
	pgstore "github.com/defective-development/ehswellnessbingo/internal/repository/pg"
	transport "github.com/defective-development/ehswellnessbingo/internal/transport/http"
	uc "github.com/defective-development/ehswellnessbingo/internal/usecase"
)

func main() {
	_ = godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	if _, err := os.Stat(publicDir); err != nil {
		publicDir = ""
	}

	logger := infra.NewStdLogger()

	var store repository.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			cancel()
			log.Fatalf("db connect: %v", err)
		}
		defer cancel()
		defer pool.Close()
		store, err = pgstore.NewPGStore(ctx, pool)
		if err != nil {
			log.Fatalf("init pg store: %v", err)
		}
		logger.Infof("using postgres store")
	} else {
		fs, err := filestore.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("init file store: %v", err)
		}
		store = fs
		logger.Infof("using file store in %s", dataDir)
	}

	bingoUC := uc.NewBingoUsecase(store)
	handlers := transport.NewHandlers(bingoUC, logger)
	router := transport.NewRouter(handlers, publicDir)

	srv := &http.Server{
		Handler:      router,
		Addr:         ":" + port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Infof("team bingo server listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("server error: %v", err)
	}
}
