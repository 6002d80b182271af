package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atsresume/middleware"
	"atsresume/parsers"
	"atsresume/services"
	"atsresume/utils"
)

const (
	pdfFilename  = "ATS_Resume.pdf"
	docxFilename = "ATS_Resume.docx"
	pdfMIME      = "application/pdf"
	docxMIME     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// GenerateRequest is the payload for the generate and segment endpoints.
type GenerateRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"` // "pdf" (default) or "docx"
}

// ResumeHandler wires the segmenter and renderer to the HTTP boundary.
type ResumeHandler struct {
	renderer *services.RenderService
	logger   *utils.Logger
}

func NewResumeHandler(renderer *services.RenderService, logger *utils.Logger) *ResumeHandler {
	return &ResumeHandler{renderer: renderer, logger: logger}
}

// Generate converts raw resume text into a downloadable PDF or DOCX.
func (h *ResumeHandler) Generate(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	doc := parsers.Segment(req.Text)

	switch strings.ToLower(req.Format) {
	case "", "pdf":
		pdf, err := h.renderer.RenderPDF(c.Request.Context(), doc)
		if err != nil {
			h.logger.Error("PDF rendering failed", err, h.logData(c))
			utils.InternalServerError(c, "Failed to generate resume PDF", err)
			return
		}
		h.logger.Info("Resume PDF generated", h.logData(c))
		sendAttachment(c, pdfFilename, pdfMIME, pdf)
	case "docx":
		out, err := h.renderer.RenderDOCX(doc)
		if err != nil {
			h.logger.Error("DOCX rendering failed", err, h.logData(c))
			utils.InternalServerError(c, "Failed to generate resume DOCX", err)
			return
		}
		h.logger.Info("Resume DOCX generated", h.logData(c))
		sendAttachment(c, docxFilename, docxMIME, out)
	default:
		utils.BadRequestError(c, "Unsupported format: "+req.Format, nil)
	}
}

// Segment returns the segmented resume structure without rendering it.
func (h *ResumeHandler) Segment(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume segmented successfully", parsers.Segment(req.Text))
}

// bindRequest decodes the JSON payload and rejects blank input before the
// segmenter is ever invoked.
func (h *ResumeHandler) bindRequest(c *gin.Context) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid request body", err)
		return req, false
	}

	if strings.TrimSpace(req.Text) == "" {
		utils.BadRequestError(c, "Please enter your resume content first", nil)
		return req, false
	}

	return req, true
}

func (h *ResumeHandler) logData(c *gin.Context) map[string]any {
	return map[string]any{
		"request_id": c.GetString(middleware.RequestIDKey),
		"path":       c.Request.URL.Path,
	}
}

func sendAttachment(c *gin.Context, filename, mimeType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, mimeType, data)
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
