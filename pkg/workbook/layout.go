package workbook

// Sheets of the training calendar workbook.
const (
	SheetTypes        = "Вид навчання"
	SheetTrainers     = "Тренери"
	SheetRooms        = "Приміщення"
	SheetParticipants = "Учасники навчання"
	SheetSchedule     = "Заплановані навчання"
)

// Schedule sheet headers, in column order.
const (
	ColumnTitle            = "Назва"
	ColumnRoom             = "Приміщення"
	ColumnTrainer          = "Тренер"
	ColumnDate             = "Дата"
	ColumnStart            = "Початок"
	ColumnEnd              = "Завершення"
	ColumnParticipantIDs   = "Учасники"
	ColumnParticipantNames = "ПІБ учасників"
	ColumnSessionID        = "ID запису"
	ColumnCreatedAt        = "Створено"
)

// Participant sheet headers.
const (
	ColumnParticipantID   = "ID"
	ColumnParticipantName = "ФІО"
)

var ScheduleHeader = []string{
	ColumnTitle,
	ColumnRoom,
	ColumnTrainer,
	ColumnDate,
	ColumnStart,
	ColumnEnd,
	ColumnParticipantIDs,
	ColumnParticipantNames,
	ColumnSessionID,
	ColumnCreatedAt,
}

// CalendarSheets is the empty layout created when no workbook exists yet.
func CalendarSheets() []Sheet {
	return []Sheet{
		{Name: SheetTypes, Rows: [][]string{{ColumnTitle}}},
		{Name: SheetTrainers, Rows: [][]string{{ColumnTrainer}}},
		{Name: SheetRooms, Rows: [][]string{{ColumnRoom}}},
		{Name: SheetParticipants, Rows: [][]string{{ColumnParticipantID, ColumnParticipantName}}},
		{Name: SheetSchedule, Rows: [][]string{ScheduleHeader}},
	}
}

// HeaderIndex maps each header cell to its column. Blank and repeated
// headers keep their first position.
func HeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// Cell returns row[col], or "" when the row is too short or col is negative.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
