package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakeshop/internal/api"
	"bakeshop/internal/database"
	"bakeshop/internal/extract"
	"bakeshop/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

// Config represents the application configuration
type Config struct {
	LLMProvider string `yaml:"llm_provider"`
	OpenAIKey   string `yaml:"openai_key"`
	OpenAIModel string `yaml:"openai_model"`
	Database    struct {
		Driver string `yaml:"driver"`
		Source string `yaml:"source"`
	} `yaml:"database"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.InitDB(config.Database.Driver, config.Database.Source); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	extractor, err := initializeExtractor(config)
	if err != nil {
		log.Fatalf("Failed to initialize receipt extractor: %v", err)
	}

	bakery := api.NewBakeryAPI(database.GetDB(), monitoring.NewMonitor(), extractor)

	if config.Metrics.Enabled {
		go startMetricsServer(*metricsPort)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: bakery.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// loadConfig reads the YAML configuration, filling in defaults so the
// server runs from an empty or missing file.
func loadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if config.Database.Driver == "" {
		config.Database.Driver = "sqlite3"
	}
	if config.Database.Source == "" {
		config.Database.Source = "bakeshop.db"
	}
	if config.OpenAIKey == "" {
		config.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	return config, nil
}

// initializeExtractor builds the LLM receipt extractor for the
// configured provider; without credentials the API runs with
// extraction disabled.
func initializeExtractor(config *Config) (*extract.Extractor, error) {
	switch config.LLMProvider {
	case "azure":
		return extract.NewAzureOpenAI(
			os.Getenv("AZURE_OPENAI_ENDPOINT"),
			os.Getenv("AZURE_OPENAI_API_KEY"),
			os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"),
		)
	case "github":
		return extract.NewGitHubModels(os.Getenv("GITHUB_TOKEN"), config.OpenAIModel)
	default:
		if config.OpenAIKey == "" {
			log.Println("No OpenAI key configured, receipt extraction disabled")
			return nil, nil
		}
		return extract.NewOpenAI(config.OpenAIKey, config.OpenAIModel)
	}
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
