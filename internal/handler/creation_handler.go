package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"ticketee/internal/model"
	"ticketee/internal/service"
	apperrors "ticketee/pkg/app_errors"
	"ticketee/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const submissionIDHeader = "X-Submission-ID"

type CreationHandler struct {
	service        service.CreationService
	maxUploadBytes int64
}

func NewCreationHandler(service service.CreationService, maxUploadBytes int64) *CreationHandler {
	return &CreationHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func (h *CreationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events", h.Submit)
		router.GET("submissions/:id", h.Progress)
	}
}

// Submit multipart 表單：活動欄位、tickets (JSON 陣列) 與 media 檔案
func (h *CreationHandler) Submit(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	draft := eventDraftFromForm(c)

	var tickets []model.TicketTypeDraft
	if raw := strings.TrimSpace(c.PostForm("tickets")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tickets"})
			return
		}
	}

	media, err := readMedia(form.File["media"])
	if err != nil {
		handleError(c, err, "SubmitEvent")
		return
	}

	ctx := c.Request.Context()
	if raw := c.GetHeader(submissionIDHeader); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
			return
		}
		ctx = service.WithSubmissionID(ctx, id)
	}

	result, err := h.service.Submit(ctx, draft, media, tickets)
	h.respondSubmit(c, result, err)
}

func (h *CreationHandler) respondSubmit(c *gin.Context, result *service.CreationResult, err error) {
	log := logger.WithComponent("handler").With(zap.String("operation", "SubmitEvent"))

	if result == nil {
		var ce *apperrors.CreationError
		if !errors.As(err, &ce) {
			handleError(c, err, "SubmitEvent")
			return
		}
		switch ce.Kind {
		case apperrors.KindUnauthenticated:
			log.Warn("Unauthenticated")
			c.JSON(http.StatusUnauthorized, gin.H{"error": ce.Message, "redirect": signInPath})
		case apperrors.KindValidation:
			log.Info("Validation failed", zap.Error(err))
			body := gin.H{"error": ce.Message, "fields": ce.Fields}
			if len(ce.Lines) > 0 {
				body["tickets"] = ce.Lines
			}
			c.JSON(http.StatusUnprocessableEntity, body)
		default:
			handleError(c, err, "SubmitEvent")
		}
		return
	}

	body := gin.H{
		"submission_id": result.SubmissionID,
		"steps":         result.Progress.Steps,
		"retry":         result.CanRetry(),
	}
	if !result.EventCreated() {
		log.Error("Event creation failed", zap.Error(err))
		body["error"] = result.Progress.State(model.StepEvent).Error
		c.JSON(http.StatusBadGateway, body)
		return
	}
	if err != nil {
		log.Warn("Event created with errors", zap.Error(err))
	}
	body["event"] = result.Event
	body["ticket_types"] = result.TicketTypes
	body["redirect"] = result.RedirectPath()
	c.JSON(http.StatusCreated, body)
}

func (h *CreationHandler) Progress(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	progress, err := h.service.Progress(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "SubmissionProgress")
		return
	}
	handleSuccess(c, progress, http.StatusOK)
}

func optionalFormValue(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

// eventDraftFromForm 只處理型別轉換；轉換失敗記在 FormErrors，登入檢查後由 service 一併回報
func eventDraftFromForm(c *gin.Context) model.EventDraft {
	fields := make(map[string]string)
	draft := model.EventDraft{
		Title:       c.PostForm("title"),
		Description: optionalFormValue(c, "description"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
		Location:    optionalFormValue(c, "location"),
	}

	if raw := strings.TrimSpace(c.PostForm("max_attendees")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["capacity"] = "Capacity must be a whole number"
		} else {
			draft.MaxAttendees = &n
		}
	}
	if raw := strings.TrimSpace(c.PostForm("is_published")); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			fields["is_published"] = "Published must be true or false"
		} else {
			draft.IsPublished = &published
		}
	}
	if len(fields) > 0 {
		draft.FormErrors = fields
	}
	return draft
}

func readMedia(files []*multipart.FileHeader) ([]model.MediaAsset, error) {
	media := make([]model.MediaAsset, 0, len(files))
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		media = append(media, model.MediaAsset{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return media, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
