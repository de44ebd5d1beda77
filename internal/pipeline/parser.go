package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/autobiz/internal/domain"
)

type Parser struct {
	log          *slog.Logger
	files        <-chan string
	parseResults chan<- *domain.ParseResult
}

func NewParser(log *slog.Logger, files <-chan string, parseResults chan<- *domain.ParseResult) *Parser {
	return &Parser{
		log:          log,
		files:        files,
		parseResults: parseResults,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.parseResults)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to parse", slog.String("filename", filename))

			records, err := p.parseRecordsFromFile(filename)
			if err != nil {
				p.log.ErrorContext(ctx, "failed to parse records", slog.String("err", err.Error()))
			}

			result := &domain.ParseResult{
				Filename: filename,
				Records:  records,
				Error:    err,
			}

			select {
			case p.parseResults <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Parser) parseRecordsFromFile(filename string) (_ []*domain.SalesRecord, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	records, err := ParseRecords(f)
	if err != nil {
		return nil, err
	}

	p.log.Debug("successfully parsed records", slog.Int("records_count", len(records)))

	return records, nil
}

// ParseRecords decodes comma separated sales records. The first row must be
// a header naming the Product, Month and Sales columns; other columns are
// ignored.
func ParseRecords(r io.Reader) ([]*domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	dec.DisallowMissingColumns = true

	var records []*domain.SalesRecord
	for {
		var record domain.SalesRecord

		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode sales record: %w", err)
		}

		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("invalid sales record #%d: %w", len(records)+1, err)
		}

		records = append(records, &record)
	}

	return records, nil
}
