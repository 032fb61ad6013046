//go:build unit

package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, Table{
		Sheet:   "Bookings",
		Headers: []string{"Sr. No.", "Room Type", "Status"},
		Rows: [][]any{
			{1, "Deluxe", "pending"},
			{2, "Suite", "confirmed"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bookings"}, f.GetSheetList())

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Sr. No.", "Room Type", "Status"},
		{"1", "Deluxe", "pending"},
		{"2", "Suite", "confirmed"},
	}, rows)
}

func TestWriteXLSXEmptyTableKeepsHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Table{Headers: []string{"Sr. No.", "Name"}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(defaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Sr. No.", "Name"}}, rows)
}
