package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
)

const (
	ModeWeb      = "web"
	ModeTerminal = "terminal"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Mode     string   `yaml:"mode" env:"MODE" env-default:"web"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Board    Board    `yaml:"board"`
	Terminal Terminal `yaml:"terminal"`
}

type Board struct {
	CanvasSize    int `yaml:"canvas-size" env:"BOARD_CANVAS_SIZE" env-default:"800"`
	PNGSquareSize int `yaml:"png-square-size" env:"BOARD_PNG_SQUARE_SIZE" env-default:"72"`
}

type Terminal struct {
	CellWidth  int `yaml:"cell-width" env:"TERMINAL_CELL_WIDTH" env-default:"6"`
	CellHeight int `yaml:"cell-height" env:"TERMINAL_CELL_HEIGHT" env-default:"3"`
}

// Load - reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeWeb, ModeTerminal:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, that.Mode)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", that.LogLevel)
	}

	if that.Board.CanvasSize < 8 || that.Board.PNGSquareSize <= 0 {
		return fmt.Errorf("board sizes must be positive: canvas %d, square %d", that.Board.CanvasSize, that.Board.PNGSquareSize)
	}

	if that.Terminal.CellWidth <= 0 || that.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cells must be positive: %dx%d", that.Terminal.CellWidth, that.Terminal.CellHeight)
	}

	return nil
}
