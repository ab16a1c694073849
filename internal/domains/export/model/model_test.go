package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiara/internal/domains/export/model"
)

func TestBuildCSV(t *testing.T) {
	t.Run("empty collection renders nothing", func(t *testing.T) {
		assert.Empty(t, model.BuildCSV(nil))
		assert.Empty(t, model.BuildCSV([]map[string]any{}))
	})

	t.Run("header is the sorted union of all fields", func(t *testing.T) {
		records := []map[string]any{
			{"name": "Ada", "email": "ada@example.com"},
			{"name": "Obi", "phone": "08012345678"},
		}

		csv := model.BuildCSV(records)
		lines := strings.Split(csv, "\n")
		require.Len(t, lines, 3)

		assert.Equal(t, model.BOM+`"email","name","phone"`, lines[0])
	})

	t.Run("every row has one cell per header field", func(t *testing.T) {
		records := []map[string]any{
			{"a": "1"},
			{"b": "2", "c": "3"},
		}

		csv := strings.TrimPrefix(model.BuildCSV(records), model.BOM)
		for _, line := range strings.Split(csv, "\n") {
			assert.Equal(t, 3, len(strings.Split(line, `","`)))
		}
	})

	t.Run("missing fields render as empty quoted cells", func(t *testing.T) {
		records := []map[string]any{
			{"a": "1", "b": nil},
		}

		csv := model.BuildCSV(records)
		assert.Contains(t, csv, `"1",""`)
	})

	t.Run("embedded quotes are doubled", func(t *testing.T) {
		records := []map[string]any{
			{"notes": `asked for the "usual" table`},
		}

		csv := model.BuildCSV(records)
		assert.Contains(t, csv, `"asked for the ""usual"" table"`)
	})

	t.Run("driver types are stringified", func(t *testing.T) {
		paidAt := time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC)
		records := []map[string]any{
			{"guests": int64(4), "paid": true, "paid_at": paidAt, "raw": []byte("bytes")},
		}

		csv := model.BuildCSV(records)
		assert.Contains(t, csv, `"4"`)
		assert.Contains(t, csv, `"true"`)
		assert.Contains(t, csv, `"2026-09-15T19:00:00Z"`)
		assert.Contains(t, csv, `"bytes"`)
	})
}

func TestArchiveName(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "epicurean-backup-2026-08-29.zip", model.ArchiveName(now))
}
