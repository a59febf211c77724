package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

type Handler struct {
	playerService    *usecase.PlayerService
	bidService       *usecase.BidService
	deadlineService  *usecase.DeadlineService
	exportService    *usecase.ExportService
	teamTokenService *usecase.TeamTokenService
	adminSessions    AdminSessions
	logger           *logging.Logger
	validator        *validator.Validate
}

// AdminSessions mints and checks the admin panel's session tokens.
type AdminSessions interface {
	Login(password string) (string, error)
	Verify(token string) error
}

func NewHandler(
	playerService *usecase.PlayerService,
	bidService *usecase.BidService,
	deadlineService *usecase.DeadlineService,
	exportService *usecase.ExportService,
	teamTokenService *usecase.TeamTokenService,
	adminSessions AdminSessions,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:    playerService,
		bidService:       bidService,
		deadlineService:  deadlineService,
		exportService:    exportService,
		teamTokenService: teamTokenService,
		adminSessions:    adminSessions,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}

	return value, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

type pageDTO struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}
