package main

import (
	"os"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/api"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/constants"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/logging"
)

func main() {
	// Path may be provided via QFIGHT_CONFIG or defaults to
	// ./qfight_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./qfight_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be overridden via QFIGHT_DB for containers.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	repo := createRepositoryOrExit(dbPath)

	router := api.NewRouter(repo, cfg.Rewards)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
