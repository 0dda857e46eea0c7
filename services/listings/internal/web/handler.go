package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	domainerrors "github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/repository"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var tracer = telemetry.GetTracer("nursingjobs/listings/web")

type Handler struct {
	repo     repository.JobRepository
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *Metrics
	logger   *zap.Logger
}

func NewHandler(repo repository.JobRepository, c cache.Cache, cacheTTL time.Duration, metrics *Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/v1")
	g.GET("/health", h.Health)
	g.GET("/jobs", h.ListJobs)
	g.GET("/jobs/:id", h.GetJob)
	g.GET("/employers", h.ListEmployers)
}

func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListJobs(ctx *gin.Context) {
	filter, page, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqCtx, span := tracer.Start(ctx.Request.Context(), "ListJobs")
	defer span.End()

	key := filter.CacheKey()
	var cached JobListResp
	switch err := h.cache.Get(reqCtx, key, &cached); {
	case err == nil:
		h.metrics.cacheLookup("hit")
		ctx.JSON(http.StatusOK, cached)
		return
	case errors.Is(err, cache.ErrNotFound):
		h.metrics.cacheLookup("miss")
	default:
		h.metrics.cacheLookup("error")
		h.logger.Warn("listing cache lookup failed", zap.String("key", key), zap.Error(err))
	}

	resp, err := h.loadPage(reqCtx, filter, page)
	if err != nil {
		span.RecordError(err)
		h.writeError(ctx, err)
		return
	}

	if err := h.cache.Set(reqCtx, key, resp, h.cacheTTL); err != nil {
		h.logger.Warn("failed to cache listing page", zap.String("key", key), zap.Error(err))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) loadPage(ctx context.Context, filter repository.Filter, page int) (JobListResp, error) {
	var (
		eg       errgroup.Group
		postings []models.JobPosting
		total    uint64
	)
	eg.Go(func() error {
		var err error
		postings, err = h.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = h.repo.Count(ctx, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return JobListResp{}, err
	}

	return JobListResp{
		Jobs: slice.Map(postings, func(idx int, src models.JobPosting) JobCard {
			return newJobCard(src, h.payLine(src))
		}),
		Total: total,
		Page:  page,
		Size:  filter.Limit,
	}, nil
}

func (h *Handler) GetJob(ctx *gin.Context) {
	reqCtx, span := tracer.Start(ctx.Request.Context(), "GetJob")
	defer span.End()

	posting, err := h.repo.FindByID(reqCtx, ctx.Param("id"))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newJobDetail(*posting, h.payLine(*posting)))
}

func (h *Handler) ListEmployers(ctx *gin.Context) {
	employers, err := h.repo.ListEmployers(ctx.Request.Context())
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, slice.Map(employers, func(idx int, src models.Employer) EmployerVO {
		return EmployerVO{Slug: src.Slug, Name: src.Name, JobCount: src.JobCount}
	}))
}

// payLine formats the stored salary fields, or returns "" when the card
// should carry no pay line.
func (h *Handler) payLine(p models.JobPosting) string {
	pay, ok := p.PayLine()
	h.metrics.payLine(ok)
	return pay
}

func (h *Handler) writeError(ctx *gin.Context, err error) {
	switch domainerrors.TypeOf(err) {
	case domainerrors.ErrTypeNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case domainerrors.ErrTypeInvalidInput:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseFilter(ctx *gin.Context) (repository.Filter, int, error) {
	page, err := intQuery(ctx, "page", 1)
	if err != nil || page < 1 {
		return repository.Filter{}, 0, errors.New("page must be a positive integer")
	}
	size, err := intQuery(ctx, "size", defaultPageSize)
	if err != nil || size < 1 || size > maxPageSize {
		return repository.Filter{}, 0, errors.New("size must be between 1 and 100")
	}
	remote, err := boolQuery(ctx, "remote")
	if err != nil {
		return repository.Filter{}, 0, errors.New("remote must be a boolean")
	}
	bonus, err := boolQuery(ctx, "sign_on_bonus")
	if err != nil {
		return repository.Filter{}, 0, errors.New("sign_on_bonus must be a boolean")
	}

	return repository.Filter{
		State:           ctx.Query("state"),
		City:            ctx.Query("city"),
		Specialty:       ctx.Query("specialty"),
		ExperienceLevel: ctx.Query("experience"),
		EmployerSlug:    ctx.Query("employer"),
		JobType:         ctx.Query("job_type"),
		Remote:          remote,
		SignOnBonus:     bonus,
		Limit:           size,
		Offset:          (page - 1) * size,
	}, page, nil
}

func intQuery(ctx *gin.Context, key string, def int) (int, error) {
	v, ok := ctx.GetQuery(key)
	if !ok || v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func boolQuery(ctx *gin.Context, key string) (*bool, error) {
	v, ok := ctx.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
