package salesorders

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

// ParsedPrice one usable row from an uploaded price list.
type ParsedPrice struct {
	ItemNumber  string
	Description string
	Price       decimal.Decimal
}

// PriceListParser extracts prices from an uploaded sales order workbook.
// Implemented by the excel infrastructure package.
type PriceListParser interface {
	ParsePriceList(r io.Reader) (prices []ParsedPrice, skipped int, err error)
}

// ImportUseCase imports a customer price list Excel into the price table.
type ImportUseCase struct {
	parser PriceListParser
	repo   repository.SalesOrderRepository
}

func NewImportUseCase(parser PriceListParser, repo repository.SalesOrderRepository) *ImportUseCase {
	return &ImportUseCase{parser: parser, repo: repo}
}

// Import parses the workbook and upserts every usable row. Returns
// ErrInvalidInput when the file contains no usable price at all.
func (uc *ImportUseCase) Import(ctx context.Context, r io.Reader, uploadedAt time.Time) (*dto.SalesOrderImportDTO, error) {
	parsed, skipped, err := uc.parser.ParsePriceList(r)
	if err != nil {
		return nil, fmt.Errorf("sales order import: parse workbook: %w", err)
	}
	if len(parsed) == 0 {
		return nil, domain.ErrInvalidInput
	}

	prices := make([]entity.SalesOrderPrice, 0, len(parsed))
	for _, p := range parsed {
		prices = append(prices, entity.SalesOrderPrice{
			ItemNumber:  p.ItemNumber,
			Description: p.Description,
			Price:       p.Price,
			UploadedAt:  uploadedAt,
		})
	}
	if err := uc.repo.UpsertPrices(ctx, prices); err != nil {
		return nil, fmt.Errorf("sales order import: upsert prices: %w", err)
	}

	return &dto.SalesOrderImportDTO{Imported: len(prices), Skipped: skipped}, nil
}
