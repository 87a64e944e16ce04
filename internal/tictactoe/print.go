package tictactoe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// CellFormatter renders the numeric code of a cell.
type CellFormatter func(cell entity.Cell, code string) string

func plainCode(_ entity.Cell, code string) string {
	return code
}

// Print - writes one line per row with the numeric code of every cell.
func (that *Board) Print(w io.Writer) error {
	return that.PrintWith(w, plainCode)
}

// PrintWith - same as Print, each code goes through format first.
func (that *Board) PrintWith(w io.Writer, format CellFormatter) error {
	if format == nil {
		format = plainCode
	}

	bw := bufio.NewWriter(w)
	for row := range that.side {
		if _, err := fmt.Fprintf(bw, "Board row %d : ", row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}

		for cell := range that.line(that.rowStart(row), 1) {
			if _, err := bw.WriteString(format(cell, strconv.Itoa(int(cell))) + " "); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush board: %w", err)
	}

	return nil
}
