package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	qhttp "cardiopredict/http"
	"cardiopredict/logging"
	"cardiopredict/ml"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Http struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Log logging.Config `yaml:"log"`
	Model struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"model"`
	Scaler struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"scaler"`
	Cache struct {
		Size int `yaml:"size"`
	} `yaml:"cache"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	flag.Parse()

	// 1. Load config
	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.Init(config.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Load artifacts. Any failure here is fatal: the service never starts
	// without both the scaler and the classifier.
	scaler, err := ml.LoadScaler(config.Scaler.Type, config.Scaler.Path)
	if err != nil {
		logger.Fatal("failed to load scaler artifact",
			zap.String("path", config.Scaler.Path), zap.Error(err))
	}
	classifier, err := ml.LoadClassifier(config.Model.Type, config.Model.Path)
	if err != nil {
		logger.Fatal("failed to load model artifact",
			zap.String("path", config.Model.Path), zap.Error(err))
	}
	engine, err := ml.NewEngine(scaler, classifier, config.Cache.Size)
	if err != nil {
		logger.Fatal("failed to build prediction engine", zap.Error(err))
	}
	qhttp.SetEngine(engine)
	logger.Info("artifacts loaded",
		zap.String("model_type", config.Model.Type),
		zap.String("scaler_type", config.Scaler.Type))

	// 3. Start HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	if config.Http.Port != 0 {
		serverConfig.Port = config.Http.Port
	}
	server := qhttp.NewServer(serverConfig)
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 4. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
