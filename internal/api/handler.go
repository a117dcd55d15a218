package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/tsa-item-checker/internal/api/middleware"
	"github.com/povarna/tsa-item-checker/internal/checker"
	"github.com/povarna/tsa-item-checker/internal/models"
	"github.com/rs/zerolog"
)

const apiVersion = "1.0.0"

type Handler struct {
	checker *checker.Checker
	logger  *zerolog.Logger
}

func NewHandler(checker *checker.Checker, logger *zerolog.Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// POST /check-item
// Body: ItemCheckRequest
// Returns: ItemCheckResult
func (h *Handler) CheckItem(req *restful.Request, resp *restful.Response) {
	var checkRequest models.ItemCheckRequest
	if err := req.ReadEntity(&checkRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("item", checkRequest.Item).
		Msg("Start item check")

	ctx := req.Request.Context()
	result, err := h.checker.Check(ctx, checkRequest)
	if err != nil {
		middleware.HandleError(resp, sanitize(err), statusFor(err))
		return
	}

	h.logger.Info().
		Str("item", result.Item).
		Bool("carry_on_allowed", result.CarryOnAllowed).
		Bool("checked_baggage_allowed", result.CheckedBaggageAllowed).
		Msg("Item check complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Root handler GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	info := models.InfoResponse{
		Message: "TSA Item Checker API is running!",
		Version: apiVersion,
		Endpoints: map[string]string{
			"check_item": "/check-item",
			"health":     "/health",
			"docs":       "/openapi.json",
		},
	}

	resp.WriteHeaderAndEntity(http.StatusOK, info)
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := models.HealthResponse{
		Status:  "healthy",
		Service: "tsa-item-checker",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrItemRequired):
		return http.StatusBadRequest
	case errors.Is(err, checker.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// sanitize keeps provider detail and internal errors out of response bodies.
// UpstreamError.Error() is already a fixed message; anything unrecognized is
// replaced wholesale.
func sanitize(err error) error {
	var upstreamErr *checker.UpstreamError
	switch {
	case errors.Is(err, models.ErrItemRequired),
		errors.Is(err, checker.ErrUpstreamTimeout),
		errors.Is(err, checker.ErrUnparsableReply):
		return err
	case errors.As(err, &upstreamErr):
		return errors.New(upstreamErr.Error())
	default:
		return errors.New("failed to check item")
	}
}
