package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trainbook/pkg/logger"
	"trainbook/pkg/model"
	"trainbook/pkg/sanitizer"
	"trainbook/pkg/workbook"
)

type workbookSessionRepository struct {
	wb  *workbook.Workbook
	log *logger.Logger
}

// NewWorkbookSessionRepository keeps the schedule on the schedule sheet of wb,
// one row per session below the header row.
func NewWorkbookSessionRepository(wb *workbook.Workbook, log *logger.Logger) ScheduleStore {
	return &workbookSessionRepository{wb: wb, log: log}
}

// scheduleColumns resolves each schedule field to a column. Headers renamed by
// hand fall back to the default position.
type scheduleColumns map[string]int

func newScheduleColumns(header []string) scheduleColumns {
	index := workbook.HeaderIndex(header)
	cols := make(scheduleColumns, len(workbook.ScheduleHeader))
	for pos, name := range workbook.ScheduleHeader {
		if i, ok := index[name]; ok {
			cols[name] = i
		} else {
			cols[name] = pos
		}
	}
	return cols
}

func (c scheduleColumns) get(row []string, name string) string {
	return strings.TrimSpace(workbook.Cell(row, c[name]))
}

func (r *workbookSessionRepository) AllSessions(ctx context.Context) ([]*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := r.wb.Rows(workbook.SheetSchedule)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	sessions := []*model.Session{}
	if len(rows) == 0 {
		return sessions, nil
	}

	cols := newScheduleColumns(rows[0])
	for i, row := range rows[1:] {
		rowNumber := i + 2
		if isBlankRow(row) {
			continue
		}

		s := sessionFromRow(cols, row, rowNumber)
		if _, err := s.Window(); err != nil {
			r.log.Warn("Skipping malformed schedule row",
				"row", rowNumber,
				"error", err,
			)
			continue
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *workbookSessionRepository) Append(ctx context.Context, s *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.wb.AppendRow(workbook.SheetSchedule, sessionToRow(s)); err != nil {
		return fmt.Errorf("failed to append session: %w", err)
	}
	return nil
}

func sessionFromRow(cols scheduleColumns, row []string, rowNumber int) *model.Session {
	s := &model.Session{
		ID:               cols.get(row, workbook.ColumnSessionID),
		Type:             cols.get(row, workbook.ColumnTitle),
		Room:             cols.get(row, workbook.ColumnRoom),
		Trainer:          cols.get(row, workbook.ColumnTrainer),
		Date:             cols.get(row, workbook.ColumnDate),
		Start:            cols.get(row, workbook.ColumnStart),
		End:              cols.get(row, workbook.ColumnEnd),
		ParticipantIDs:   sanitizer.SplitIDs(cols.get(row, workbook.ColumnParticipantIDs)),
		ParticipantNames: sanitizer.SplitIDs(cols.get(row, workbook.ColumnParticipantNames)),
	}
	if s.ID == "" {
		s.ID = fmt.Sprintf("row-%d", rowNumber)
	}
	if createdAt, err := time.Parse(time.RFC3339, cols.get(row, workbook.ColumnCreatedAt)); err == nil {
		s.CreatedAt = createdAt
	}
	return s
}

func sessionToRow(s *model.Session) []string {
	createdAt := ""
	if !s.CreatedAt.IsZero() {
		createdAt = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		s.Type,
		s.Room,
		s.Trainer,
		s.Date,
		s.Start,
		s.End,
		sanitizer.JoinIDs(s.ParticipantIDs),
		sanitizer.JoinIDs(s.ParticipantNames),
		s.ID,
		createdAt,
	}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
