package csvimport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

const DefaultBatchSize = 100

// Record é uma linha do arquivo indexada pelo nome da coluna
type Record map[string]string

// Get devolve o valor da coluna ou erro quando ela não existe no cabeçalho
func (r Record) Get(column string) (string, error) {
	value, ok := r[column]
	if !ok {
		return "", fmt.Errorf("coluna %q ausente", column)
	}
	return strings.TrimSpace(value), nil
}

type RowParser[T any] func(Record) (T, error)

type FlushFunc[T any] func(ctx context.Context, batch []T) error

type Stats struct {
	Loaded  int
	Skipped int
}

// Stream lê o arquivo linha a linha, descarta as linhas inválidas e grava lotes de batchSize
func Stream[T any](ctx context.Context, r io.Reader, parse RowParser[T], batchSize int, flush FlushFunc[T]) (Stats, error) {
	stats := Stats{}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		return stats, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}
	columns := normalizeHeader(header)

	batch := make([]T, 0, batchSize)
	writeBatch := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := flush(ctx, batch); err != nil {
			return err
		}
		stats.Loaded += len(batch)
		log.ForContext(ctx).Debugf("Carregados %d registros...", stats.Loaded)
		batch = make([]T, 0, batchSize)
		return nil
	}

	line := 1
	for {
		fields, err := reader.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Skipped++
				log.ForContext(ctx).WithError(err).Warnf("Linha %d ignorada: formato inválido", line)
				continue
			}
			return stats, fmt.Errorf("erro ao ler linha %d: %w", line, err)
		}

		record := make(Record, len(columns))
		for i, column := range columns {
			if i < len(fields) {
				record[column] = fields[i]
			}
		}

		item, err := parse(record)
		if err != nil {
			stats.Skipped++
			log.ForContext(ctx).WithError(err).Warnf("Linha %d ignorada", line)
			continue
		}

		batch = append(batch, item)
		if len(batch) >= batchSize {
			if err := writeBatch(); err != nil {
				return stats, err
			}
		}
	}

	if err := writeBatch(); err != nil {
		return stats, err
	}

	return stats, nil
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, column := range header {
		column = strings.TrimPrefix(column, "\ufeff")
		columns[i] = strings.ToLower(strings.TrimSpace(column))
	}
	return columns
}
