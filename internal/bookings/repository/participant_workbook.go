package repository

import (
	"context"
	"fmt"
	"strings"

	"trainbook/pkg/model"
	"trainbook/pkg/workbook"
)

type workbookParticipantRepository struct {
	wb *workbook.Workbook
}

// NewWorkbookParticipantRepository reads the roster sheet of wb.
func NewWorkbookParticipantRepository(wb *workbook.Workbook) ParticipantLookup {
	return &workbookParticipantRepository{wb: wb}
}

// WorkbookRoster lists the participants of wb in sheet order. The first row is
// the header; the ID and full-name columns are found by name. Only the first
// row of a repeated ID counts.
func WorkbookRoster(wb *workbook.Workbook) ([]model.Participant, error) {
	rows, err := wb.Rows(workbook.SheetParticipants)
	if err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}
	if len(rows) == 0 {
		return []model.Participant{}, nil
	}

	index := workbook.HeaderIndex(rows[0])
	idCol, ok := index[workbook.ColumnParticipantID]
	if !ok {
		idCol = 0
	}
	nameCol, ok := index[workbook.ColumnParticipantName]
	if !ok {
		nameCol = 1
	}

	seen := make(map[string]bool, len(rows))
	participants := make([]model.Participant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := strings.TrimSpace(workbook.Cell(row, idCol))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, model.Participant{
			ID:       id,
			FullName: strings.TrimSpace(workbook.Cell(row, nameCol)),
		})
	}
	return participants, nil
}

func (r *workbookParticipantRepository) roster(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	participants, err := WorkbookRoster(r.wb)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.FullName
	}
	return names, nil
}

func (r *workbookParticipantRepository) Resolve(ctx context.Context, id string) (string, bool, error) {
	names, err := r.roster(ctx)
	if err != nil {
		return "", false, err
	}
	name, ok := names[id]
	return name, ok, nil
}

func (r *workbookParticipantRepository) ResolveAll(ctx context.Context, ids []string) ([]string, error) {
	names, err := r.roster(ctx)
	if err != nil {
		return nil, err
	}
	return resolveNames(ids, names), nil
}
