package balance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/apperror"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetMine returns the caller's balance for the current calendar year.
// The year is never taken from the request: GetOrCreate mints missing
// rows with default allotments, so a caller-chosen year would let
// anyone seed balances for arbitrary years.
func (h *Handler) GetMine(c *gin.Context) {
	userID := c.GetString("user_id")
	year := time.Now().UTC().Year()

	resp, err := h.service.GetOrCreate(c.Request.Context(), userID, year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("get balance failed",
			zap.String("user_id", userID),
			zap.Int("year", year),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
