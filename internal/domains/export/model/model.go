package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tiara/shared/constant"
)

// BOM makes spreadsheet tools detect the CSV as UTF-8.
const BOM = "\uFEFF"

// Collection pairs an export file name with the table it is drawn from.
type Collection struct {
	Name  string
	Table string
}

// ArchiveName names the backup archive after the day it was taken.
func ArchiveName(now time.Time) string {
	return fmt.Sprintf("epicurean-backup-%s.zip", now.Format(constant.DateOnlyFormat))
}

// BuildCSV renders records as CSV. The header is the sorted union of every
// field name seen across the records, each cell is quoted, and embedded
// quotes are doubled.
func BuildCSV(records []map[string]any) string {
	if len(records) == 0 {
		return constant.Empty
	}

	fieldSet := map[string]struct{}{}
	for _, record := range records {
		for field := range record {
			fieldSet[field] = struct{}{}
		}
	}

	header := make([]string, 0, len(fieldSet))
	for field := range fieldSet {
		header = append(header, field)
	}

	sort.Strings(header)

	var sb strings.Builder

	sb.WriteString(BOM)
	sb.WriteString(joinRow(header))

	for _, record := range records {
		row := make([]string, len(header))
		for i, field := range header {
			row[i] = formatValue(record[field])
		}

		sb.WriteString("\n")
		sb.WriteString(joinRow(row))
	}

	return sb.String()
}

func joinRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}

	return strings.Join(quoted, ",")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return constant.Empty
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(constant.DateFormat)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
