package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sacarias/enrollment-system/internal/assessment"
	"github.com/sacarias/enrollment-system/internal/config"
	"github.com/sacarias/enrollment-system/internal/curriculum"
	"github.com/sacarias/enrollment-system/internal/handler"
	"github.com/sacarias/enrollment-system/internal/prompt"
	"github.com/sacarias/enrollment-system/internal/repository"
	"github.com/sacarias/enrollment-system/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Route log output to the error log file. The log is diagnostic only;
	// if it cannot be opened the program continues without one.
	logFile, err := os.OpenFile(cfg.ErrorLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Println("[WARNING] Could not open error log; continuing without logging.")
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(logFile)
		defer logFile.Close()
	}

	// Load stores and static data
	creds := repository.NewCredentialStore(cfg.UsersPath(), logger)
	if err := creds.Load(); err != nil {
		logger.Errorf("Failed to read users file: %v", err)
		fmt.Println("[WARNING] Could not read users file; continuing with no credentials loaded.")
	}
	profiles := repository.NewProfileStore()

	catalog, err := curriculum.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load curriculum tables: %v", err)
	}

	files := assessment.NewStore(cfg.DataDir, logger)

	// Initialize layers
	svc := service.NewService(creds, profiles, files, catalog, cfg, logger)
	pr := prompt.New(os.Stdin, os.Stdout)
	h := handler.NewHandler(svc, pr, logger)

	h.Run()
}
