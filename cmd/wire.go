package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	filecatalog "github.com/bnema/rxscan/internal/adapters/catalog/file"
	remotecatalog "github.com/bnema/rxscan/internal/adapters/catalog/remote"
	tomlcatalog "github.com/bnema/rxscan/internal/adapters/catalog/toml"
	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/config"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/logging"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	config   config.Config
	homeDir  string
	debounce domain.DebounceConfig
	logger   zerolog.Logger
	catalog  ports.Catalog
	service  *application.Service
	clock    ports.Clock
}

func wireApp(stderr io.Writer) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	debounce, err := cfg.DebounceConfig()
	if err != nil {
		return nil, err
	}

	catalog, err := newCatalog(cfg.Catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("wire %s catalog: %w", cfg.Catalog.Source, err)
	}

	clock := ports.SystemClock{}

	return &app{
		config:   cfg,
		homeDir:  homeDir,
		debounce: debounce,
		logger:   logger,
		catalog:  catalog,
		service:  application.NewService(catalog, clock),
		clock:    clock,
	}, nil
}

func newCatalog(cfg config.CatalogConfig, logger zerolog.Logger) (ports.Catalog, error) {
	switch cfg.Source {
	case config.SourceTOML:
		catalog, err := tomlcatalog.NewCatalog(cfg.Path)
		if err != nil {
			return nil, err
		}
		return catalog, nil
	case config.SourceHTTP:
		client := &http.Client{Timeout: cfg.Timeout}
		catalog, err := remotecatalog.NewCatalog(cfg.URL, client, logger.With().Str("component", "catalog").Logger())
		if err != nil {
			return nil, err
		}
		return catalog, nil
	default:
		catalog, err := filecatalog.NewCatalog(cfg.Path)
		if err != nil {
			return nil, err
		}
		return catalog, nil
	}
}
