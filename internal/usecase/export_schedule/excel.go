package export_schedule

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

const sheetName = "Расписание"

// exportDateFormat формат дат внутри файла
const exportDateFormat = "02.01.2006"

var headers = []string{
	"Номер", "ID пользователя", "Дата начала", "Дата окончания", "Количество человек",
	"Название", "Тема мероприятия", "Описание", "Статус заявки", "Целевая аудитория",
	"Тип регистрации", "Логистика участников", "Тип программы", "Место", "Размещение участников",
	"Количество экспертов", "ФИО куратора", "Должность куратора",
	"Контакты куратора", "Дополнительная информация",
}

// buildWorkbook собирает xlsx с расписанием: строка на бронирование,
// ширина колонок подгоняется под содержимое
func buildWorkbook(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
		Border: []excelize.Border{
			{Type: "bottom", Style: 2, Color: "000000"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	widths := make([]int, len(headers))

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}
		widths[col] = len([]rune(header))
	}

	for row, b := range bookings {
		values := bookingRow(b)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
			if l := len([]rune(fmt.Sprint(value))); l > widths[col] {
				widths[col] = l
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func bookingRow(b *domain.Booking) []interface{} {
	return []interface{}{
		b.ID,
		b.UserID,
		b.StartDate.Format(exportDateFormat),
		b.EndDate.Format(exportDateFormat),
		b.PeopleCount,
		strValue(b.Name),
		b.Theme,
		strValue(b.Description),
		string(b.Status),
		strValue(b.TargetAudience),
		strValue(b.Registration),
		strValue(b.Logistics),
		strValue(b.ProgramType),
		strValue(b.Place),
		strValue(b.ParticipantsAccommodation),
		intValue(b.ExpertsCount),
		strValue(b.CuratorName),
		strValue(b.CuratorPosition),
		strValue(b.CuratorContact),
		strValue(b.OtherInfo),
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
