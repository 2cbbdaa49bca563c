package questionset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names recognised in a CSV header.
const (
	columnQuestion    = "question"
	columnAnswer      = "answer"
	columnExplanation = "explanation"
)

func parseCSVFile(_ context.Context, path string, rep *Report) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return parseCSV(f, rep)
}

// parseCSV reads a header row followed by data rows. Rows whose field count
// differs from the header, or which fail to parse, are skipped.
func parseCSV(r io.Reader, rep *Report) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	qi, ok := cols[columnQuestion]
	if !ok {
		return fmt.Errorf("csv header is missing column %q", columnQuestion)
	}
	ai, ok := cols[columnAnswer]
	if !ok {
		return fmt.Errorf("csv header is missing column %q", columnAnswer)
	}
	ei, hasExplanation := cols[columnExplanation]

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rep.skip(fmt.Sprintf("line %d", pe.StartLine), pe.Err.Error())
				continue
			}
			return fmt.Errorf("read csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		loc := fmt.Sprintf("line %d", line)
		if len(rec) != len(header) {
			rep.skip(loc, fmt.Sprintf("expected %d fields, got %d", len(header), len(rec)))
			continue
		}

		var explanation string
		if hasExplanation {
			explanation = rec[ei]
		}
		rep.add(loc, rec[qi], rec[ai], explanation)
	}
}
