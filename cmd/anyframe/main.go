package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/leengari/anyframe/internal/anyvalue"
	"github.com/leengari/anyframe/internal/dataframe"
	"github.com/leengari/anyframe/internal/frame"
	"github.com/leengari/anyframe/internal/logging"
	"github.com/leengari/anyframe/internal/storage"
)

func main() {
	input := flag.String("input", "", "JSON row document to load (built-in sample when empty)")
	seqURL := flag.String("seq", "", "Seq ingestion URL (empty disables Seq)")
	debug := flag.Bool("debug", false, "Log table build events")
	flag.Parse()

	cfg := logging.DefaultConfig()
	cfg.Output = os.Stderr
	cfg.SeqURL = *seqURL
	if *debug {
		cfg.Level = slog.LevelDebug
	}

	logger, closeFn := logging.SetupLogger(cfg)
	defer closeFn()

	slog.SetDefault(logger)

	table, err := load(*input, logger)
	if err != nil {
		logger.Error("failed to build table", "input", *input, "error", err)
		closeFn()
		os.Exit(1)
	}
	defer table.Release()

	schema, err := dataframe.NamedSchema(table, table.ColumnNames())
	if err != nil {
		logger.Error("failed to derive schema", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Debug("table schema", "schema", schema.String())

	if err := frame.Print(os.Stdout, table); err != nil {
		logger.Error("failed to print table", "error", err)
		closeFn()
		os.Exit(1)
	}
}

func load(path string, logger *slog.Logger) (*frame.Table, error) {
	if path != "" {
		return storage.LoadTable(path, logger)
	}

	a := dataframe.NewAssembler(nil)
	a.AddObserver(dataframe.NewLoggingObserver(logger))
	return a.TableFromRows(sampleRows(), []string{"id", "name", "rank", "score", "active", "raw"})
}

func sampleRows() []frame.Row {
	return []frame.Row{
		dataframe.MakeRow(
			anyvalue.Wrap(uint64(3), anyvalue.UInt64),
			anyvalue.Wrap("A", anyvalue.Utf8),
			anyvalue.Wrap(int8(4), anyvalue.Int8),
			anyvalue.Wrap(1.5, anyvalue.Float64),
			anyvalue.Wrap(true, anyvalue.Boolean),
			anyvalue.Wrap([]byte{255, 0}, anyvalue.Binary),
		),
		dataframe.MakeRow(
			anyvalue.Wrap(uint64(4), anyvalue.UInt64),
			anyvalue.Wrap("B", anyvalue.Utf8),
			anyvalue.Wrap(int8(-2), anyvalue.Int8),
			anyvalue.WrapNull(),
			anyvalue.Wrap(false, anyvalue.Boolean),
			anyvalue.Wrap([]byte{}, anyvalue.Binary),
		),
	}
}
