package usecase

import (
	"context"
	"strings"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/observability/metrics"
	"socis_remeses/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ExportFile is a rendered receipts export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IExportUseCase interface {
	ExportReceipts(ctx context.Context, remittanceID, format string) (ExportFile, error)
}

type ExportUseCase struct {
	remittances interfaces.IRemittanceRepository
	receipts    IReceiptUseCase
	renderers   map[string]interfaces.IReceiptRenderer
	log         *zap.Logger
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(remittances interfaces.IRemittanceRepository, receipts IReceiptUseCase, renderers map[string]interfaces.IReceiptRenderer, log *zap.Logger) *ExportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportUseCase{remittances: remittances, receipts: receipts, renderers: renderers, log: log}
}

func (u *ExportUseCase) ExportReceipts(ctx context.Context, remittanceID, format string) (file ExportFile, err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	defer func() { metrics.IncExport(format, metrics.Result(err)) }()

	renderer, ok := u.renderers[format]
	if !ok {
		return ExportFile{}, entities.InvalidInput("export", "format", "unsupported format "+format)
	}
	remittanceID = strings.TrimSpace(remittanceID)
	rem, err := u.remittances.GetByID(ctx, remittanceID)
	if err != nil {
		return ExportFile{}, err
	}
	if rem.ID == "" {
		return ExportFile{}, entities.NotFound("remittance", remittanceID)
	}

	receipts, err := u.receipts.List(ctx, ReceiptFilter{RemittanceID: rem.ID})
	if err != nil {
		return ExportFile{}, err
	}
	data, err := renderer.Render(rem, receipts)
	if err != nil {
		u.log.Error("export: render failed", zap.String("remittance_id", rem.ID), zap.String("format", format), zap.Error(err))
		return ExportFile{}, err
	}
	return ExportFile{
		Filename:    "rebuts-" + rem.ID + "." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}
