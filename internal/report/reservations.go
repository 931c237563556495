// Package report строит выгрузки для внешних потребителей (xlsx).
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const ReservationsSheet = "Reservations"

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ReservationsHeader = []string{
	"ID",
	"Room",
	"User",
	"Start",
	"End",
	"Status",
}

var reservationsColWidths = []float64{10, 10, 28, 22, 22, 14}

type ReservationRow struct {
	ID         int64
	RoomNumber int
	UserName   string
	StartAt    time.Time
	EndAt      time.Time
	Status     string
}

// ReservationsXLSX возвращает книгу с одним листом: шапка + по строке на бронь.
func ReservationsXLSX(rows []ReservationRow) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo требует открытый файл, поэтому Close только в конце
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(ReservationsSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22}) // m/d/yy h:mm
	if err != nil {
		return nil, fmt.Errorf("create time style: %w", err)
	}

	for col, title := range ReservationsHeader {
		if err := setCell(f, col+1, 1, title); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(ReservationsSheet, name, name, reservationsColWidths[col]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetCellStyle(ReservationsSheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}

	for i, r := range rows {
		row := i + 2
		values := []any{r.ID, r.RoomNumber, r.UserName, r.StartAt.UTC(), r.EndAt.UTC(), r.Status}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
		start, _ := excelize.CoordinatesToCellName(4, row)
		end, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.SetCellStyle(ReservationsSheet, start, end, timeStyle); err != nil {
			return nil, fmt.Errorf("set time style: %w", err)
		}
	}

	// шапка остаётся видимой при прокрутке
	if err := f.SetPanes(ReservationsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(ReservationsSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
