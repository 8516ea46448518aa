package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

type Handler struct {
	catalogService *usecase.CatalogService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(catalogService *usecase.CatalogService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService: catalogService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type listPlayersRequest struct {
	SearchTerm     string `validate:"max=100"`
	PositionFilter string `validate:"omitempty,oneof=QB RB WR TE K DEF FLEX SUPERFLEX"`
	TeamFilter     string `validate:"omitempty,max=5,alpha"`
	SortKey        string `validate:"required"`
	SortDirection  string `validate:"oneof=ascending descending"`
	ScoringFormat  string `validate:"oneof=standard ppr half_ppr"`
	Page           int    `validate:"gte=1"`
	Limit          int    `validate:"gte=1,lte=500"`
}

type playerPageDTO struct {
	Players    []player.Player `json:"players"`
	TotalPages int             `json:"totalPages"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	req, err := parseListPlayersRequest(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	params, err := req.toParameters()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.catalogService.ListPlayersWithLimit(ctx, params, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "page", req.Page, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := page.Players
	if players == nil {
		players = []player.Player{}
	}
	writeSuccess(ctx, w, http.StatusOK, playerPageDTO{
		Players:    players,
		TotalPages: page.TotalPages,
	})
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	rawID := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, rawID))
		return
	}

	detail, err := h.catalogService.GetPlayerDetail(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseListPlayersRequest applies the endpoint defaults: adp ascending, ppr,
// page 1 and limit 100.
func parseListPlayersRequest(values url.Values) (listPlayersRequest, error) {
	req := listPlayersRequest{
		SearchTerm:     strings.TrimSpace(values.Get("searchTerm")),
		PositionFilter: strings.ToUpper(strings.TrimSpace(values.Get("positionFilter"))),
		TeamFilter:     strings.ToUpper(strings.TrimSpace(values.Get("teamFilter"))),
		SortKey:        valueOrDefault(values, "sortKey", string(query.SortByADP)),
		SortDirection:  strings.ToLower(valueOrDefault(values, "sortDirection", string(query.Ascending))),
		ScoringFormat:  string(scoring.ParseFormat(values.Get("scoringFormat"))),
	}

	var err error
	if req.Page, err = intOrDefault(values, "page", 1); err != nil {
		return listPlayersRequest{}, err
	}
	if req.Limit, err = intOrDefault(values, "limit", usecase.DefaultPageSize); err != nil {
		return listPlayersRequest{}, err
	}
	return req, nil
}

func (r listPlayersRequest) toParameters() (query.Parameters, error) {
	key, ok := query.ParseSortKey(r.SortKey)
	if !ok {
		return query.Parameters{}, fmt.Errorf("%w: unknown sort key %q", usecase.ErrInvalidInput, r.SortKey)
	}

	return query.Parameters{
		SearchTerm:     r.SearchTerm,
		PositionFilter: query.PositionFilter(r.PositionFilter),
		TeamFilter:     r.TeamFilter,
		Sort: query.SortConfig{
			Key:       key,
			Direction: query.SortDirection(r.SortDirection),
		},
		ScoringFormat: scoring.Format(r.ScoringFormat),
		Page:          r.Page,
	}, nil
}

func valueOrDefault(values url.Values, key, fallback string) string {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return out, nil
}
