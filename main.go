// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"cinema-rooms/cmd"
	"cinema-rooms/internal/data/repository"
	"cinema-rooms/internal/wire"
	"cinema-rooms/pkg/database"
	"cinema-rooms/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	generateToken := flag.Bool("generate-token", false, "print a signed JWT and exit")
	tokenSubject := flag.String("token-sub", "", "subject claim for -generate-token")
	tokenTTL := flag.Duration("token-ttl", time.Hour, "token lifetime for -generate-token")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *generateToken {
		token, err := utils.GenerateJWT(config.JWT.Secret, *tokenSubject, *tokenTTL)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories and wire dependencies
	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
