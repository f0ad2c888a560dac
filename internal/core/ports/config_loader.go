package ports

import "go.trai.ch/curve/internal/core/domain"

// ConfigLoader defines the interface for loading the startup configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. Fields missing from the file keep
	// their defaults. A missing file fails with domain.ErrConfigNotFound.
	Load(path string) (*domain.Config, error)
}
