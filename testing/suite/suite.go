package suite

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config

	logs *bytes.Buffer
}

func New(t *testing.T) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		Config: &config.Config{
			LogLevel: "debug",
			Board: config.Board{
				Side:    3,
				Pattern: config.PatternEmpty,
				Line:    1,
				Player:  1,
			},
			Output: config.Output{Plain: true},
		},
		logs: logs,
	}
}

// Records - decodes every JSON log line written so far.
func (that *Suite) Records() []map[string]any {
	that.Helper()

	var records []map[string]any

	decoder := json.NewDecoder(bytes.NewReader(that.logs.Bytes()))
	for decoder.More() {
		record := map[string]any{}
		if err := decoder.Decode(&record); err != nil {
			that.Fatalf("could not decode log record: %v", err)
		}
		records = append(records, record)
	}

	return records
}

// LastRecord - returns the most recent log record with the given message.
func (that *Suite) LastRecord(msg string) map[string]any {
	that.Helper()

	records := that.Records()
	for i := len(records) - 1; i >= 0; i-- {
		if records[i][slog.MessageKey] == msg {
			return records[i]
		}
	}

	that.Fatalf("no log record with message %q", msg)

	return nil
}
