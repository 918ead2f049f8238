package service

import (
	"context"
	"errors"
	"io"

	"trainbook/internal/catalog/repository"
	apperrors "trainbook/pkg/errors"
	"trainbook/pkg/logger"
	"trainbook/pkg/model"
	"trainbook/pkg/sanitizer"
	"trainbook/pkg/workbook"
)

type CatalogService interface {
	ListValues(ctx context.Context, category string) ([]string, error)
	ParseIDs(ctx context.Context, file io.Reader) ([]string, error)
}

type catalogService struct {
	repo repository.OptionRepository
	log  *logger.Logger
}

func NewCatalogService(repo repository.OptionRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) ListValues(ctx context.Context, category string) ([]string, error) {
	c, ok := model.ParseOptionCategory(category)
	if !ok {
		return nil, apperrors.NotFoundWithID("Option list", category)
	}

	values, err := s.repo.ListValues(ctx, c)
	if err != nil {
		s.log.Error("Failed to list options", "category", c, "error", err)
		return nil, apperrors.Internal("Failed to list options", err)
	}
	return values, nil
}

// ParseIDs returns the non-empty cells of the first column of the first sheet.
// Every row counts, there is no header.
func (s *catalogService) ParseIDs(ctx context.Context, file io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Request timed out")
	}

	cells, err := workbook.FirstColumn(file)
	if err != nil {
		if errors.Is(err, workbook.ErrNotWorkbook) || errors.Is(err, workbook.ErrEmptyWorkbook) {
			s.log.Warn("Rejected ID upload", "error", err)
			return nil, apperrors.InvalidInput("File is not a valid xlsx workbook")
		}
		s.log.Error("Failed to read ID upload", "error", err)
		return nil, apperrors.Internal("Failed to read uploaded file", err)
	}

	return sanitizer.CompactValues(cells), nil
}
