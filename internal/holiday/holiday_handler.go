package holiday

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/audit"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/apperror"
	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/response"
)

type Handler struct {
	service  Service
	auditSvc audit.Service
	logger   *zap.Logger
}

func NewHandler(service Service, auditSvc audit.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, auditSvc: auditSvc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("holiday request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetForYear(c *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return
		}
		year = parsed
	}

	resp, err := h.service.GetForYear(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Sync(c *gin.Context) {
	adminID := c.GetString("user_id")

	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return
		}
		year = parsed
	}

	resp, err := h.service.Sync(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	details := resp.Message
	h.auditSvc.Log(c.Request.Context(), audit.ActionHolidaySync, adminID, nil, &details)

	response.Success(c, http.StatusOK, resp, nil)
}
