package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

// RunApp - builds the configured board, prints it to out and logs the evaluation.
// opts tune the terminal output used for colouring, the profile is detected from out by default.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer, opts ...termenv.OutputOption) error {
	log := logger.With("component", "app")

	board, err := tictactoe.New(conf.Board.Side)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	log.Debug("Board created", "side", board.Side(), "pattern", conf.Board.Pattern)

	if err = applyPattern(board, &conf.Board); err != nil {
		return fmt.Errorf("could not apply pattern: %w", err)
	}

	if err = board.PrintWith(out, cellFormatter(out, conf.Output.Plain, opts...)); err != nil {
		return fmt.Errorf("could not print board: %w", err)
	}

	result := board.Evaluate()
	log.Info("Board evaluated",
		"has_winner", result.HasWinner(),
		"winner", result.Winner.String(),
		"location", result.Location.String(),
		"one", board.Count(entity.PlayerOne),
		"two", board.Count(entity.PlayerTwo),
	)

	return nil
}

func applyPattern(board *tictactoe.Board, conf *config.Board) error {
	switch conf.Pattern {
	case config.PatternEmpty:
		board.Clear()
		return nil
	case config.PatternNoWinner:
		board.FillWithNoWinner()
		return nil
	}

	player, err := conf.PlayerCell()
	if err != nil {
		return err
	}

	switch conf.Pattern {
	case config.PatternRow:
		board.SetRow(conf.Line, player)
	case config.PatternColumn:
		board.SetColumn(conf.Line, player)
	case config.PatternDiagonalLeftToRight:
		board.SetDiagonalLeftToRight(player)
	case config.PatternDiagonalRightToLeft:
		board.SetDiagonalRightToLeft(player)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownPattern, conf.Pattern)
	}

	return nil
}

// cellFormatter colours player codes when out is a terminal.
func cellFormatter(out io.Writer, plain bool, opts ...termenv.OutputOption) tictactoe.CellFormatter {
	if plain {
		return nil
	}

	output := termenv.NewOutput(out, opts...)

	return func(cell entity.Cell, code string) string {
		switch cell {
		case entity.PlayerOne:
			return output.String(code).Foreground(output.Color("4")).Bold().String()
		case entity.PlayerTwo:
			return output.String(code).Foreground(output.Color("1")).Bold().String()
		default:
			return output.String(code).Faint().String()
		}
	}
}
