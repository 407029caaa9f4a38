package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	request "socis_remeses/internal/adapter/http/dto/request"
	response "socis_remeses/internal/adapter/http/dto/response"
	"socis_remeses/internal/adapter/export"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	xmlContentType = "application/xml; charset=utf-8"
	maxVerifyBytes = 16 << 20
)

// RemittanceHandler handles HTTP requests for remittances (remeses).
//
// Build outcomes are logged here; they are the notification hook for whoever
// prepares the bank submission.

type RemittanceHandler struct {
	usecase  usecase.IRemittanceUseCase
	exports  usecase.IExportUseCase
	creditor entities.Creditor
	log      *zap.Logger
}

func NewRemittanceHandler(uc usecase.IRemittanceUseCase, exports usecase.IExportUseCase, defaultCreditor entities.Creditor, log *zap.Logger) *RemittanceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemittanceHandler{usecase: uc, exports: exports, creditor: defaultCreditor, log: log}
}

// BuildRemittance godoc
// @Summary  Build a draft remittance from pending quotes
// @Tags     remittances
// @Accept   json
// @Produce  json
// @Param    remittance body request.RemittanceRequest true "Creditor, execution date and quote ids"
// @Success  201 {object} response.RemittanceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /remittances [post]
func (h *RemittanceHandler) BuildRemittance(c *gin.Context) {
	var payload request.RemittanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	cmd, err := payload.ToCommand(h.creditor)
	if err != nil {
		field := "execution_date"
		if errors.Is(err, request.ErrMissingCreditor) {
			field = "creditor"
		}
		writeError(c, errInvalidRequest.WithField(field))
		return
	}

	started := time.Now()
	doc, err := h.usecase.Build(c.Request.Context(), cmd)
	if err != nil {
		h.log.Warn("remittance: build failed",
			zap.Int("quotes", len(cmd.QuoteIDs)),
			zap.Time("execution_date", cmd.ExecutionDate),
			zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	h.log.Info("remittance: build succeeded",
		zap.String("remittance_id", doc.Remittance.ID),
		zap.Int("lines", len(doc.Lines)),
		zap.Int64("total_cents", doc.Remittance.TotalCents),
		zap.Duration("took", time.Since(started)))
	c.JSON(http.StatusCreated, response.FromRemittanceDocument(doc))
}

func (h *RemittanceHandler) ListRemittances(c *gin.Context) {
	rems, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRemittances(rems))
}

func (h *RemittanceHandler) GetRemittance(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRemittanceDocument(doc))
}

func (h *RemittanceHandler) RebuildRemittance(c *gin.Context) {
	doc, err := h.usecase.Rebuild(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warn("remittance: rebuild failed", zap.String("remittance_id", c.Param("id")), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRemittanceDocument(doc))
}

// GenerateRemittance godoc
// @Summary  Finalise a draft and produce its pain.008 file
// @Tags     remittances
// @Produce  json
// @Param    id path string true "Remittance id"
// @Success  200 {object} response.RemittanceResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /remittances/{id}/generate [post]
func (h *RemittanceHandler) GenerateRemittance(c *gin.Context) {
	doc, err := h.usecase.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warn("remittance: generate failed", zap.String("remittance_id", c.Param("id")), zap.Error(err))
		writeError(c, mapDomainError(err))
		return
	}
	h.log.Info("remittance: generated", zap.String("remittance_id", doc.Remittance.ID), zap.String("xml_url", doc.Remittance.FileRef))
	c.JSON(http.StatusOK, response.FromRemittanceDocument(doc))
}

func (h *RemittanceHandler) SubmitRemittance(c *gin.Context) {
	rem, err := h.usecase.MarkSubmitted(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRemittance(rem))
}

func (h *RemittanceHandler) CancelRemittance(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadXML serves the stored pain.008 file of a generated remittance.
func (h *RemittanceHandler) DownloadXML(c *gin.Context) {
	id := c.Param("id")
	data, err := h.usecase.Document(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+id+`.xml"`)
	c.Data(http.StatusOK, xmlContentType, data)
}

func (h *RemittanceHandler) ExportXLSX(c *gin.Context) {
	h.exportReceipts(c, export.FormatXLSX)
}

func (h *RemittanceHandler) ExportPDF(c *gin.Context) {
	h.exportReceipts(c, export.FormatPDF)
}

func (h *RemittanceHandler) exportReceipts(c *gin.Context, format string) {
	file, err := h.exports.ExportReceipts(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// VerifyDocument godoc
// @Summary  Parse and validate a pain.008.001.02 document
// @Tags     remittances
// @Accept   xml
// @Produce  json
// @Success  200 {object} response.RemittanceResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /remittances/verify [post]
func (h *RemittanceHandler) VerifyDocument(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxVerifyBytes+1))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if len(data) > maxVerifyBytes {
		writeError(c, errInvalidRequest.WithField("body"))
		return
	}
	doc, err := h.usecase.Verify(c.Request.Context(), data)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRemittanceDocument(doc))
}
