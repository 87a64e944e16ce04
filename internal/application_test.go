package application

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		// Given: the default configuration
		st := suite.New(t)
		var out bytes.Buffer

		// When: the application runs
		err := RunApp(st.Logger, st.Config, &out)

		// Then: an empty board is printed and no winner is logged
		require.NoError(t, err)
		assert.Equal(t, "Board row 0 : 0 0 0 \nBoard row 1 : 0 0 0 \nBoard row 2 : 0 0 0 \n", out.String())

		record := st.LastRecord("Board evaluated")
		assert.Equal(t, "app", record["component"])
		assert.Equal(t, false, record["has_winner"])
		assert.Equal(t, "empty", record["winner"])
		assert.Equal(t, "none", record["location"])
	})

	t.Run("Left-to-right diagonal on a 6x6 board", func(t *testing.T) {
		// Given: a 6x6 board configured with player two on the left-to-right diagonal
		st := suite.New(t)
		st.Config.Board = config.Board{Side: 6, Pattern: config.PatternDiagonalLeftToRight, Player: 2}
		var out bytes.Buffer

		// When: the application runs
		err := RunApp(st.Logger, st.Config, &out)

		// Then: player two wins on the diagonal
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Board row 0 : 2 0 0 0 0 0 \n")
		assert.Contains(t, out.String(), "Board row 5 : 0 0 0 0 0 2 \n")

		record := st.LastRecord("Board evaluated")
		assert.Equal(t, true, record["has_winner"])
		assert.Equal(t, "two", record["winner"])
		assert.Equal(t, "diagonal left-to-right", record["location"])
		assert.InDelta(t, 6, record["two"], 0)
	})

	t.Run("Row and column patterns report their line", func(t *testing.T) {
		tests := []struct {
			pattern  string
			line     int
			location string
		}{
			{config.PatternRow, 2, "row 2"},
			{config.PatternColumn, 3, "column 3"},
			{config.PatternDiagonalRightToLeft, 0, "diagonal right-to-left"},
		}

		for _, tt := range tests {
			st := suite.New(t)
			st.Config.Board = config.Board{Side: 4, Pattern: tt.pattern, Line: tt.line, Player: 1}

			err := RunApp(st.Logger, st.Config, &bytes.Buffer{})

			require.NoError(t, err)
			record := st.LastRecord("Board evaluated")
			assert.Equal(t, "one", record["winner"])
			assert.Equal(t, tt.location, record["location"])
		}
	})

	t.Run("Out of range row leaves the board empty", func(t *testing.T) {
		st := suite.New(t)
		st.Config.Board = config.Board{Side: 3, Pattern: config.PatternRow, Line: 4, Player: 1}

		err := RunApp(st.Logger, st.Config, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "empty", st.LastRecord("Board evaluated")["winner"])
	})

	t.Run("No-winner pattern fills the board", func(t *testing.T) {
		// Given: a 3x3 board configured with the no-winner pattern
		st := suite.New(t)
		st.Config.Board.Pattern = config.PatternNoWinner
		var out bytes.Buffer

		// When: the application runs
		err := RunApp(st.Logger, st.Config, &out)

		// Then: the fixed pattern is printed and nobody wins
		require.NoError(t, err)
		assert.Equal(t, "Board row 0 : 1 1 2 \nBoard row 1 : 2 1 1 \nBoard row 2 : 1 2 2 \n", out.String())

		record := st.LastRecord("Board evaluated")
		assert.Equal(t, "empty", record["winner"])
		assert.InDelta(t, 5, record["one"], 0)
		assert.InDelta(t, 4, record["two"], 0)
	})

	t.Run("Colour is skipped for the ascii profile", func(t *testing.T) {
		// Given: colouring enabled but an output without colour support
		st := suite.New(t)
		st.Config.Output.Plain = false
		st.Config.Board = config.Board{Side: 2, Pattern: config.PatternRow, Line: 1, Player: 2}
		var out bytes.Buffer

		// When: the application runs
		err := RunApp(st.Logger, st.Config, &out, termenv.WithProfile(termenv.Ascii))

		// Then: the codes are printed without escape sequences
		require.NoError(t, err)
		assert.Equal(t, "Board row 0 : 2 2 \nBoard row 1 : 0 0 \n", out.String())
	})

	t.Run("Player codes are coloured for the ansi profile", func(t *testing.T) {
		// Given: colouring enabled on an ansi output
		st := suite.New(t)
		st.Config.Output.Plain = false
		st.Config.Board = config.Board{Side: 2, Pattern: config.PatternRow, Line: 1, Player: 2}
		var out bytes.Buffer

		// When: the application runs
		err := RunApp(st.Logger, st.Config, &out, termenv.WithProfile(termenv.ANSI))

		// Then: every code is wrapped in escape sequences
		require.NoError(t, err)
		assert.Contains(t, out.String(), "\x1b[31;1m2\x1b[0m")
		assert.Contains(t, out.String(), "\x1b[2m0\x1b[0m")
		assert.NotContains(t, out.String(), "Board row 0 : 2 2 ")
	})

	t.Run("Plain output ignores the profile", func(t *testing.T) {
		st := suite.New(t)
		st.Config.Board = config.Board{Side: 2, Pattern: config.PatternRow, Line: 1, Player: 2}
		var out bytes.Buffer

		err := RunApp(st.Logger, st.Config, &out, termenv.WithProfile(termenv.ANSI))

		require.NoError(t, err)
		assert.Equal(t, "Board row 0 : 2 2 \nBoard row 1 : 0 0 \n", out.String())
	})

	t.Run("Invalid side", func(t *testing.T) {
		st := suite.New(t)
		st.Config.Board.Side = 0

		err := RunApp(st.Logger, st.Config, &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInvalidSide)
	})

	t.Run("Invalid player", func(t *testing.T) {
		st := suite.New(t)
		st.Config.Board = config.Board{Side: 3, Pattern: config.PatternRow, Line: 1, Player: 3}

		err := RunApp(st.Logger, st.Config, &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Unknown pattern", func(t *testing.T) {
		st := suite.New(t)
		st.Config.Board.Pattern = "spiral"

		err := RunApp(st.Logger, st.Config, &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrUnknownPattern)
		assert.Contains(t, err.Error(), `"spiral"`)
	})
}

func TestCellFormatter(t *testing.T) {
	t.Run("Colours each cell state for the ansi profile", func(t *testing.T) {
		// Given: a formatter bound to an ansi output
		format := cellFormatter(&bytes.Buffer{}, false, termenv.WithProfile(termenv.ANSI))
		require.NotNil(t, format)

		// Then: players are bold and coloured, empty cells are faint
		assert.Equal(t, "\x1b[34;1m1\x1b[0m", format(entity.PlayerOne, "1"))
		assert.Equal(t, "\x1b[31;1m2\x1b[0m", format(entity.PlayerTwo, "2"))
		assert.Equal(t, "\x1b[2m0\x1b[0m", format(entity.Empty, "0"))
	})

	t.Run("Plain returns no formatter", func(t *testing.T) {
		assert.Nil(t, cellFormatter(&bytes.Buffer{}, true, termenv.WithProfile(termenv.ANSI)))
	})
}
