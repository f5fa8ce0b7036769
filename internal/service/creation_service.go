package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ticketee/internal/cache"
	"ticketee/internal/identity"
	"ticketee/internal/metrics"
	"ticketee/internal/model"
	"ticketee/internal/repository"
	"ticketee/internal/storage"
	apperrors "ticketee/pkg/app_errors"
	"ticketee/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CreationService interface {
	// Submit 依序執行：建立活動 → 上傳媒體 → 建立票種
	Submit(ctx context.Context, draft model.EventDraft, media []model.MediaAsset, tickets []model.TicketTypeDraft) (*CreationResult, error)
	Progress(ctx context.Context, submissionID uuid.UUID) (*model.CreationProgress, error)
}

// CreationResult 一次提交的最終結果；步驟 1 失敗時 Event 為 nil
type CreationResult struct {
	SubmissionID uuid.UUID
	Event        *model.Event
	Media        []model.UploadedMedia
	TicketTypes  []*model.TicketType
	Progress     *model.CreationProgress
}

func (r *CreationResult) EventCreated() bool {
	return r.Event != nil && r.Event.ID != uuid.Nil
}

// RedirectPath 活動已建立時導向活動頁
func (r *CreationResult) RedirectPath() string {
	if !r.EventCreated() {
		return ""
	}
	return "/events/" + r.Event.ID.String()
}

func (r *CreationResult) CanRetry() bool {
	return r.Progress != nil && r.Progress.HasError()
}

type CreationOptions struct {
	MaxParallelUploads int
	MaxParallelTickets int
	Now                func() time.Time
}

type CreationServiceImpl struct {
	identity    identity.Provider
	events      repository.EventRepository
	ticketTypes repository.TicketTypeRepository
	store       storage.ObjectStore
	progress    cache.ProgressStore
	opts        CreationOptions
}

// NewCreationService progress 可為 nil，此時不記錄進度
func NewCreationService(
	identity identity.Provider,
	events repository.EventRepository,
	ticketTypes repository.TicketTypeRepository,
	store storage.ObjectStore,
	progress cache.ProgressStore,
	opts CreationOptions,
) CreationService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CreationServiceImpl{
		identity:    identity,
		events:      events,
		ticketTypes: ticketTypes,
		store:       store,
		progress:    progress,
		opts:        opts,
	}
}

type submissionIDKey struct{}

// WithSubmissionID 讓呼叫端預先指定 submission id，方便在提交期間輪詢進度
func WithSubmissionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// submissionIDFor 呼叫端指定的 id 已屬於其他使用者（或無法確認）時改發新的 id
func (s *CreationServiceImpl) submissionIDFor(ctx context.Context, owner uuid.UUID) uuid.UUID {
	id, ok := ctx.Value(submissionIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.New()
	}
	if s.progress == nil {
		return id
	}
	existing, err := s.progress.Get(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrSubmissionNotFound):
		return id
	case err == nil && existing.OwnerID == owner:
		return id
	}
	logger.WithComponent("creation").Warn("submission id rejected, issuing a new one",
		zap.String("requested_id", id.String()), zap.String("user_id", owner.String()))
	return uuid.New()
}

// submission 單次提交的執行狀態，只在 Submit 的 goroutine 中修改
type submission struct {
	result *CreationResult
	errs   []error
	log    *zap.Logger
}

func (s *CreationServiceImpl) Submit(ctx context.Context, draft model.EventDraft, media []model.MediaAsset, tickets []model.TicketTypeDraft) (*CreationResult, error) {
	started := time.Now()

	principal, err := s.identity.CurrentPrincipal(ctx)
	if err != nil || principal == nil {
		metrics.RecordCreationSubmit("rejected", time.Since(started))
		return nil, apperrors.NewUnauthenticated("You must be logged in to create an event")
	}

	now := s.opts.Now()
	event, fields := ValidateEventDraft(draft, now)
	ticketTypes, lines := ValidateTicketDrafts(tickets, now)
	if len(fields) > 0 || len(lines) > 0 {
		metrics.RecordCreationSubmit("rejected", time.Since(started))
		return nil, apperrors.NewValidation(fields, lines)
	}
	event.CreatedBy = principal.ID

	submissionID := s.submissionIDFor(ctx, principal.ID)
	progress := model.NewCreationProgress(submissionID)
	progress.OwnerID = principal.ID
	run := &submission{
		result: &CreationResult{
			SubmissionID: submissionID,
			Progress:     progress,
		},
		log: logger.WithComponent("creation").With(
			zap.String("submission_id", submissionID.String()),
			zap.String("user_id", principal.ID.String()),
		),
	}
	s.record(ctx, run)

	if !s.createEvent(ctx, run, event) {
		metrics.RecordCreationSubmit("failed", time.Since(started))
		return run.result, errors.Join(run.errs...)
	}
	s.uploadMedia(ctx, run, media)
	s.createTicketTypes(ctx, run, ticketTypes)

	outcome := "completed"
	if run.result.Progress.HasError() {
		outcome = "partial"
		run.log.Warn("event created with errors", zap.String("event_id", run.result.Event.ID.String()))
	} else {
		run.log.Info("event created", zap.String("event_id", run.result.Event.ID.String()))
	}
	metrics.RecordCreationSubmit(outcome, time.Since(started))

	return run.result, errors.Join(run.errs...)
}

// Progress 只有送出者看得到；其他使用者視為不存在
func (s *CreationServiceImpl) Progress(ctx context.Context, submissionID uuid.UUID) (*model.CreationProgress, error) {
	principal, err := s.identity.CurrentPrincipal(ctx)
	if err != nil || principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if s.progress == nil {
		return nil, apperrors.ErrSubmissionNotFound
	}
	progress, err := s.progress.Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if progress.OwnerID != principal.ID {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return progress, nil
}

// createEvent 步驟 1；失敗時後續步驟維持 pending
func (s *CreationServiceImpl) createEvent(ctx context.Context, run *submission, event *model.Event) bool {
	s.begin(ctx, run, model.StepEvent)

	created, err := s.events.Create(ctx, event)
	if err != nil {
		s.fail(ctx, run, apperrors.NewPersistence(string(model.StepEvent), "create events", err))
		run.log.Error("failed to create event", zap.Error(err))
		return false
	}

	run.result.Event = created
	id := created.ID
	run.result.Progress.EventID = &id
	s.complete(ctx, run, model.StepEvent)
	return true
}

type uploadOutcome struct {
	url string
	err error
}

// uploadMedia 步驟 2；全部成功才更新活動的 media_urls
func (s *CreationServiceImpl) uploadMedia(ctx context.Context, run *submission, media []model.MediaAsset) {
	s.begin(ctx, run, model.StepMedia)
	if len(media) == 0 {
		s.complete(ctx, run, model.StepMedia)
		return
	}

	event := run.result.Event
	outcomes := make([]uploadOutcome, len(media))
	g := new(errgroup.Group)
	if s.opts.MaxParallelUploads > 0 {
		g.SetLimit(s.opts.MaxParallelUploads)
	}
	for i, asset := range media {
		i, asset := i, asset
		g.Go(func() error {
			url, err := s.store.Upload(ctx, storage.ObjectKey(event.ID, i, asset.Name), asset)
			outcomes[i] = uploadOutcome{url: url, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var lines []string
	var failures []error
	urls := make([]string, 0, len(media))
	for i, outcome := range outcomes {
		if outcome.err != nil {
			lines = append(lines, fmt.Sprintf("Failed to upload %s: %v", media[i].Name, outcome.err))
			failures = append(failures, outcome.err)
			continue
		}
		urls = append(urls, outcome.url)
	}
	if len(lines) > 0 {
		s.fail(ctx, run, apperrors.NewUpload(string(model.StepMedia), lines, errors.Join(failures...)))
		run.log.Warn("media upload failed", zap.Int("failed", len(lines)), zap.Int("total", len(media)))
		return
	}

	cover := urls[0]
	updated, err := s.events.Update(ctx, event.ID, model.UpdateEventParams{
		CoverImageURL: &cover,
		MediaURLs:     &urls,
	})
	if err != nil {
		// 已上傳的物件不回收
		s.fail(ctx, run, apperrors.NewPersistence(string(model.StepMedia), "update this event", err))
		run.log.Error("failed to attach media", zap.Error(err))
		return
	}

	run.result.Event = updated
	for i, url := range urls {
		run.result.Media = append(run.result.Media, model.UploadedMedia{URL: url, Position: i})
	}
	s.complete(ctx, run, model.StepMedia)
}

type ticketOutcome struct {
	ticketType *model.TicketType
	err        error
}

// createTicketTypes 步驟 3；只要活動已建立就會執行
func (s *CreationServiceImpl) createTicketTypes(ctx context.Context, run *submission, ticketTypes []*model.TicketType) {
	s.begin(ctx, run, model.StepTickets)
	if len(ticketTypes) == 0 {
		s.complete(ctx, run, model.StepTickets)
		return
	}

	eventID := run.result.Event.ID
	outcomes := make([]ticketOutcome, len(ticketTypes))
	g := new(errgroup.Group)
	if s.opts.MaxParallelTickets > 0 {
		g.SetLimit(s.opts.MaxParallelTickets)
	}
	for i, tt := range ticketTypes {
		i, tt := i, tt
		tt.EventID = eventID
		g.Go(func() error {
			created, err := s.ticketTypes.Create(ctx, tt)
			outcomes[i] = ticketOutcome{ticketType: created, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var lines []string
	var failures []error
	for i, outcome := range outcomes {
		if outcome.err != nil {
			lines = append(lines, fmt.Sprintf("Ticket type #%d: %s", i+1, apperrors.PersistenceMessage("create ticket types", outcome.err)))
			failures = append(failures, outcome.err)
			continue
		}
		run.result.TicketTypes = append(run.result.TicketTypes, outcome.ticketType)
	}
	if len(lines) > 0 {
		s.fail(ctx, run, apperrors.NewPartialTicket(string(model.StepTickets), lines, errors.Join(failures...)))
		run.log.Warn("ticket types partially created", zap.String("errors", strings.Join(lines, " | ")))
		return
	}
	s.complete(ctx, run, model.StepTickets)
}

func (s *CreationServiceImpl) begin(ctx context.Context, run *submission, step model.CreationStep) {
	s.transition(ctx, run, step, model.StepProcessing, "")
}

func (s *CreationServiceImpl) complete(ctx context.Context, run *submission, step model.CreationStep) {
	s.transition(ctx, run, step, model.StepCompleted, "")
	metrics.RecordCreationStep(string(step), string(model.StepCompleted))
}

func (s *CreationServiceImpl) fail(ctx context.Context, run *submission, err *apperrors.CreationError) {
	step := model.CreationStep(err.Step)
	s.transition(ctx, run, step, model.StepError, err.Detail())
	run.errs = append(run.errs, err)
	metrics.RecordCreationStep(string(step), string(model.StepError))
}

func (s *CreationServiceImpl) transition(ctx context.Context, run *submission, step model.CreationStep, status model.StepStatus, message string) {
	if _, err := run.result.Progress.Transition(step, status, message); err != nil {
		run.log.Error("illegal step transition", zap.Error(err))
		return
	}
	s.record(ctx, run)
}

// record 進度寫入失敗只記錄，不影響流程結果
func (s *CreationServiceImpl) record(ctx context.Context, run *submission) {
	if s.progress == nil {
		return
	}
	if err := s.progress.Save(ctx, run.result.Progress); err != nil {
		run.log.Warn("failed to record creation progress", zap.Error(err))
	}
}
