package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

// Header of files written by this bot. Files holding only name1,name2,match_date,prompted
// are still readable.
var Header = []string{"name1", "id1", "name2", "id2", "match_date", "prompted"}

var requiredColumns = []string{"name1", "name2", "match_date", "prompted"}

// ReadRecords parses a history CSV. Rows that cannot be read are reported in
// rowErrs and left out; err is only set when the file itself is unusable.
func ReadRecords(r io.Reader) (records []entity.HistoryRecord, rowErrs []error, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read history header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, nil, fmt.Errorf("history header is missing column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for n := 2; ; n++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w: %v", n, domain.ErrMalformedHistoryEntry, err))
			continue
		}
		if len(row) != len(header) {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w: expected %d fields, got %d",
				n, domain.ErrMalformedHistoryEntry, len(header), len(row)))
			continue
		}

		records = append(records, entity.HistoryRecord{
			Name1:     field(row, "name1"),
			ID1:       field(row, "id1"),
			Name2:     field(row, "name2"),
			ID2:       field(row, "id2"),
			MatchDate: field(row, "match_date"),
			Prompted:  parsePrompted(field(row, "prompted")),
		})
	}

	return records, rowErrs, nil
}

func WriteRecords(w io.Writer, records []entity.HistoryRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}

	for _, r := range records {
		prompted := "0"
		if r.Prompted {
			prompted = "1"
		}
		if err := writer.Write([]string{r.Name1, r.ID1, r.Name2, r.ID2, r.MatchDate, prompted}); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parsePrompted(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
