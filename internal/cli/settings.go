package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/cartofolio/internal/logging"
	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/pipeline"
)

// loadConfig decodes the layered viper settings into a Config
func loadConfig() (*model.Config, error) {
	if configErr != nil {
		return nil, configErr
	}

	var cfg model.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if noCache {
		cfg.Cache.Enabled = false
	}
	if cfg.Output.Verbose && cfg.Logging.Level == model.DefaultConfig().Logging.Level {
		cfg.Logging.Level = "debug"
	}
	cfg.Source.DefaultLanguage = model.ParseLanguage(string(cfg.Source.DefaultLanguage))

	return &cfg, nil
}

// session bundles what every data command needs
type session struct {
	cfg    *model.Config
	logger *zap.Logger
	lang   model.Language
	loader *pipeline.Loader
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	loader, err := pipeline.NewLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		lang:   cfg.Source.DefaultLanguage,
		loader: loader,
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// snapshot loads the session language, turning load failures into a notice
// the user can act on.
func (s *session) snapshot(ctx context.Context) (*model.Snapshot, error) {
	snapshot, err := s.loader.Load(logging.WithLogger(ctx, s.logger), s.lang)
	if err != nil {
		return nil, describeLoadError(err)
	}
	return snapshot, nil
}

func describeLoadError(err error) error {
	var statusErr *pipeline.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Errorf("mission document unavailable (%s): %w", statusErr.URL, err)
	case errors.Is(err, pipeline.ErrDecode):
		return fmt.Errorf("mission document is not a list of missions: %w", err)
	case errors.Is(err, pipeline.ErrFetch):
		return fmt.Errorf("could not reach mission document: %w", err)
	default:
		return fmt.Errorf("could not load missions: %w", err)
	}
}
