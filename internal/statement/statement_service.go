package statement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-sitebooks/internal/dailysummary"
	"go-sitebooks/internal/events"
	"go-sitebooks/internal/messaging/kafka"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/counter"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/env"
	statementerrors "go-sitebooks/internal/statement/errors"
	"go-sitebooks/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=statement_service.go -destination=mock/statement_service_mock.go -package=mock
type Service interface {
	Worker(ctx context.Context, companyID string, p Params) (WorkerReport, error)
	ProjectDaily(ctx context.Context, companyID string, p Params) (ProjectReport, error)
	Supplier(ctx context.Context, companyID string, p Params) (SupplierReport, error)
	ProjectWorkers(ctx context.Context, companyID string, p Params) (ProjectWorkersReport, error)
	Render(ctx context.Context, companyID, kind, format string, p Params) (Rendered, error)

	RequestExport(ctx context.Context, companyID, userID string, req ExportRequest) (ExportResponse, error)
	GetExport(ctx context.Context, companyID, id string) (ExportResponse, error)
	ProcessExport(ctx context.Context, companyID, exportID string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	summaries dailysummary.Service
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	storage   storage.Storage
	cache     *reportCache
	slow      time.Duration
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	summaries dailysummary.Service,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	store storage.Storage,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("statement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("statement.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		summaries: summaries,
		counter:   counterRepo,
		outbox:    outbox,
		storage:   store,
		cache: &reportCache{
			rdb:     rdb,
			ttl:     time.Duration(env.Int("REPORT_CACHE_TTL_SECONDS", 300)) * time.Second,
			enabled: env.Bool("ENABLE_REPORT_CACHE", false),
			logger:  l,
		},
		slow:   time.Duration(env.Int("REPORT_SLOW_MS", 500)) * time.Millisecond,
		logger: l,
	}
}

func (s *service) Worker(ctx context.Context, companyID string, p Params) (WorkerReport, error) {
	rg, err := dateutil.ParseRange(p.From, p.To)
	if err != nil {
		return WorkerReport{}, err
	}
	if _, err := uuid.Parse(p.WorkerID); err != nil {
		return WorkerReport{}, statementerrors.ErrWorkerNotFound
	}
	defer s.observe(ctx, KindWorker, time.Now())

	return cached(ctx, s.cache, CacheKey(companyID, KindWorker, p), func() (WorkerReport, error) {
		name, err := s.repo.WorkerName(ctx, companyID, p.WorkerID)
		if err != nil {
			return WorkerReport{}, notFound(err, statementerrors.ErrWorkerNotFound)
		}
		if p.ProjectID != "" {
			if _, err := s.projectName(ctx, companyID, p.ProjectID); err != nil {
				return WorkerReport{}, err
			}
		}

		att, err := s.repo.Attendance(ctx, companyID, p.WorkerID, p.ProjectID, rg)
		if err != nil {
			return WorkerReport{}, err
		}
		trs, err := s.repo.WorkerTransfers(ctx, companyID, p.WorkerID, p.ProjectID, rg)
		if err != nil {
			return WorkerReport{}, err
		}
		return BuildWorkerReport(p.WorkerID, name, rg, att, trs), nil
	})
}

func (s *service) ProjectDaily(ctx context.Context, companyID string, p Params) (ProjectReport, error) {
	rg, err := dateutil.ParseRange(p.From, p.To)
	if err != nil {
		return ProjectReport{}, err
	}
	defer s.observe(ctx, KindProjectDaily, time.Now())

	return cached(ctx, s.cache, CacheKey(companyID, KindProjectDaily, p), func() (ProjectReport, error) {
		name, err := s.projectName(ctx, companyID, p.ProjectID)
		if err != nil {
			return ProjectReport{}, err
		}

		summaries, err := s.summaries.GetRange(ctx, companyID, p.ProjectID, &rg.From, &rg.To)
		if err != nil {
			return ProjectReport{}, err
		}
		att, err := s.repo.Attendance(ctx, companyID, "", p.ProjectID, rg)
		if err != nil {
			return ProjectReport{}, err
		}
		purchases, err := s.repo.Purchases(ctx, companyID, p.ProjectID, "", rg)
		if err != nil {
			return ProjectReport{}, err
		}
		transfers, err := s.repo.WorkerTransfers(ctx, companyID, "", p.ProjectID, rg)
		if err != nil {
			return ProjectReport{}, err
		}
		payments, err := s.repo.SupplierPayments(ctx, companyID, p.ProjectID, "", rg)
		if err != nil {
			return ProjectReport{}, err
		}
		funds, err := s.repo.ProjectFunds(ctx, companyID, p.ProjectID, rg)
		if err != nil {
			return ProjectReport{}, err
		}
		return BuildProjectReport(p.ProjectID, name, rg, summaries, att, purchases, transfers, payments, funds), nil
	})
}

func (s *service) Supplier(ctx context.Context, companyID string, p Params) (SupplierReport, error) {
	rg, err := dateutil.ParseRange(p.From, p.To)
	if err != nil {
		return SupplierReport{}, err
	}
	if _, err := uuid.Parse(p.SupplierID); err != nil {
		return SupplierReport{}, statementerrors.ErrSupplierNotFound
	}
	defer s.observe(ctx, KindSupplier, time.Now())

	return cached(ctx, s.cache, CacheKey(companyID, KindSupplier, p), func() (SupplierReport, error) {
		name, err := s.repo.SupplierName(ctx, companyID, p.SupplierID)
		if err != nil {
			return SupplierReport{}, notFound(err, statementerrors.ErrSupplierNotFound)
		}
		opening, err := s.repo.SupplierOpeningBalance(ctx, companyID, p.SupplierID, rg.From)
		if err != nil {
			return SupplierReport{}, err
		}
		purchases, err := s.repo.Purchases(ctx, companyID, "", p.SupplierID, rg)
		if err != nil {
			return SupplierReport{}, err
		}
		payments, err := s.repo.SupplierPayments(ctx, companyID, "", p.SupplierID, rg)
		if err != nil {
			return SupplierReport{}, err
		}
		return BuildSupplierReport(p.SupplierID, name, rg, opening, purchases, payments), nil
	})
}

func (s *service) ProjectWorkers(ctx context.Context, companyID string, p Params) (ProjectWorkersReport, error) {
	rg, err := dateutil.ParseRange(p.From, p.To)
	if err != nil {
		return ProjectWorkersReport{}, err
	}
	defer s.observe(ctx, KindProjectWorkers, time.Now())

	return cached(ctx, s.cache, CacheKey(companyID, KindProjectWorkers, p), func() (ProjectWorkersReport, error) {
		name, err := s.projectName(ctx, companyID, p.ProjectID)
		if err != nil {
			return ProjectWorkersReport{}, err
		}
		att, err := s.repo.Attendance(ctx, companyID, "", p.ProjectID, rg)
		if err != nil {
			return ProjectWorkersReport{}, err
		}
		trs, err := s.repo.WorkerTransfers(ctx, companyID, "", p.ProjectID, rg)
		if err != nil {
			return ProjectWorkersReport{}, err
		}
		return BuildProjectWorkersReport(p.ProjectID, name, rg, att, trs), nil
	})
}

func (s *service) Render(ctx context.Context, companyID, kind, format string, p Params) (Rendered, error) {
	if !IsFileFormat(format) {
		return Rendered{}, statementerrors.ErrUnsupportedFormat
	}

	var doc Document
	switch kind {
	case KindWorker:
		r, err := s.Worker(ctx, companyID, p)
		if err != nil {
			return Rendered{}, err
		}
		doc = r.Document()
	case KindProjectDaily:
		r, err := s.ProjectDaily(ctx, companyID, p)
		if err != nil {
			return Rendered{}, err
		}
		doc = r.Document()
	case KindSupplier:
		r, err := s.Supplier(ctx, companyID, p)
		if err != nil {
			return Rendered{}, err
		}
		doc = r.Document()
	case KindProjectWorkers:
		r, err := s.ProjectWorkers(ctx, companyID, p)
		if err != nil {
			return Rendered{}, err
		}
		doc = r.Document()
	default:
		return Rendered{}, statementerrors.ErrUnsupportedKind
	}

	base := fmt.Sprintf("%s-statement-%s-%s", strings.ReplaceAll(kind, "_", "-"), p.From, p.To)
	return RenderDocument(doc, format, base)
}

func (s *service) RequestExport(ctx context.Context, companyID, userID string, req ExportRequest) (ExportResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ExportResponse{}, apperror.InvalidField("company_id")
	}
	if !IsValidKind(req.Kind) {
		return ExportResponse{}, statementerrors.ErrUnsupportedKind
	}
	if !IsFileFormat(req.Format) {
		return ExportResponse{}, statementerrors.ErrUnsupportedFormat
	}
	if err := validateParams(req.Kind, req.Params); err != nil {
		return ExportResponse{}, err
	}
	params, err := json.Marshal(req.Params)
	if err != nil {
		return ExportResponse{}, err
	}

	job := &ExportJob{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Kind:      req.Kind,
		Format:    req.Format,
		Params:    string(params),
		Status:    ExportPending,
	}
	if uid, err := uuid.Parse(userID); err == nil {
		job.RequestedBy = &uid
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("request export begin tx failed", zap.Error(err))
		return ExportResponse{}, err
	}
	defer tx.Rollback()

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeExportNumber)
	if err != nil {
		return ExportResponse{}, err
	}
	job.ExportNumber = counter.DocumentNumber(exportNumberPrefix, next)
	job.CreatedAt = time.Now().UTC()

	if err := s.repo.WithTx(tx).CreateExport(ctx, job); err != nil {
		return ExportResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.StatementExportRequestedEvent{
		EventType:   events.StatementExportRequestedEventType,
		RequestID:   rid,
		ExportID:    job.ID.String(),
		CompanyID:   companyID,
		RequestedBy: userID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return ExportResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "statement_export",
		AggregateID:   job.ID.String(),
		EventType:     event.EventType,
		Topic:         events.StatementExportRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return ExportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExportResponse{}, err
	}

	l.Info("statement export requested",
		zap.String("export_id", job.ID.String()),
		zap.String("export_number", job.ExportNumber),
		zap.String("kind", job.Kind),
		zap.String("format", job.Format),
	)
	return mapExport(job), nil
}

func (s *service) GetExport(ctx context.Context, companyID, id string) (ExportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExportResponse{}, statementerrors.ErrExportNotFound
	}
	job, err := s.repo.FindExport(ctx, companyID, id)
	if err != nil {
		return ExportResponse{}, notFound(err, statementerrors.ErrExportNotFound)
	}
	return mapExport(job), nil
}

// ProcessExport renders a pending job and stores the file. Rendering and
// storage failures are recorded on the job; only persistence errors are
// returned so the caller can retry.
func (s *service) ProcessExport(ctx context.Context, companyID, exportID string) error {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.String("export_id", exportID))

	job, err := s.repo.FindExport(ctx, companyID, exportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("export job missing, skipping")
			return nil
		}
		return err
	}
	if job.Status != ExportPending {
		l.Info("export job already processed", zap.String("status", job.Status))
		return nil
	}

	var p Params
	if err := json.Unmarshal([]byte(job.Params), &p); err != nil {
		return s.finishExport(ctx, job, "", err)
	}

	rendered, err := s.Render(ctx, companyID, job.Kind, job.Format, p)
	if err != nil {
		return s.finishExport(ctx, job, "", err)
	}

	name := fmt.Sprintf("exports/%s/%s-%s", companyID, job.ExportNumber, rendered.FileName)
	url, err := s.storage.Save(ctx, name, rendered.ContentType, rendered.Data)
	if err != nil {
		return s.finishExport(ctx, job, "", err)
	}

	l.Info("statement export stored", zap.String("url", url), zap.Int("bytes", len(rendered.Data)))
	return s.finishExport(ctx, job, url, nil)
}

func (s *service) finishExport(ctx context.Context, job *ExportJob, url string, cause error) error {
	now := time.Now().UTC()
	job.CompletedAt = &now
	if cause != nil {
		msg := cause.Error()
		var appErr *apperror.AppError
		if errors.As(cause, &appErr) {
			msg = appErr.Message
		}
		job.Status = ExportFailed
		job.Error = &msg
		s.logger.Warn("statement export failed", zap.String("export_id", job.ID.String()), zap.Error(cause))
	} else {
		job.Status = ExportDone
		job.FileURL = &url
	}
	return s.repo.UpdateExport(ctx, job)
}

func (s *service) projectName(ctx context.Context, companyID, projectID string) (string, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return "", statementerrors.ErrProjectNotFound
	}
	name, err := s.repo.ProjectName(ctx, companyID, projectID)
	if err != nil {
		return "", notFound(err, statementerrors.ErrProjectNotFound)
	}
	return name, nil
}

func (s *service) observe(ctx context.Context, kind string, started time.Time) {
	elapsed := time.Since(started)
	if elapsed > s.slow {
		contextutil.GetLogger(ctx, s.logger).Warn("slow statement",
			zap.String("kind", kind),
			zap.Duration("elapsed", elapsed),
		)
	}
}

func validateParams(kind string, p Params) error {
	if _, err := dateutil.ParseRange(p.From, p.To); err != nil {
		return err
	}
	switch kind {
	case KindWorker:
		if _, err := uuid.Parse(p.WorkerID); err != nil {
			return statementerrors.ErrWorkerNotFound
		}
	case KindSupplier:
		if _, err := uuid.Parse(p.SupplierID); err != nil {
			return statementerrors.ErrSupplierNotFound
		}
	default:
		if _, err := uuid.Parse(p.ProjectID); err != nil {
			return statementerrors.ErrProjectNotFound
		}
	}
	return nil
}

func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

func mapExport(job *ExportJob) ExportResponse {
	var p Params
	_ = json.Unmarshal([]byte(job.Params), &p)

	res := ExportResponse{
		ID:           job.ID.String(),
		ExportNumber: job.ExportNumber,
		Kind:         job.Kind,
		Format:       job.Format,
		Params:       p,
		Status:       job.Status,
		FileURL:      job.FileURL,
		Error:        job.Error,
		CreatedAt:    job.CreatedAt.Format(time.RFC3339),
	}
	if job.CompletedAt != nil {
		v := job.CompletedAt.Format(time.RFC3339)
		res.CompletedAt = &v
	}
	return res
}
