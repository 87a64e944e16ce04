package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	PatternEmpty               = "empty"
	PatternRow                 = "row"
	PatternColumn              = "column"
	PatternDiagonalLeftToRight = "diagonal-left-to-right"
	PatternDiagonalRightToLeft = "diagonal-right-to-left"
	PatternNoWinner            = "no-winner"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
	Output   Output `yaml:"output"`
}

type Board struct {
	Side    int    `yaml:"side" env:"BOARD_SIDE" env-default:"3"`
	Pattern string `yaml:"pattern" env:"BOARD_PATTERN" env-default:"empty"`
	Line    int    `yaml:"line" env:"BOARD_LINE" env-default:"1"`
	Player  int    `yaml:"player" env:"BOARD_PLAYER" env-default:"1"`
}

// Output controls how the board is printed. Plain disables terminal colours.
type Output struct {
	Plain bool `yaml:"plain" env:"OUTPUT_PLAIN"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, environment variables override its values.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// PlayerCell - converts the configured player number to a cell value.
func (that *Board) PlayerCell() (entity.Cell, error) {
	cell := entity.Cell(that.Player)
	if !cell.IsPlayer() {
		return entity.Empty, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayer, that.Player)
	}

	return cell, nil
}
