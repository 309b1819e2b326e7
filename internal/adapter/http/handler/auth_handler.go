package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
	"taskapp/internal/core/util"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *telemetry.AppMetrics
}

func NewAuthHandler(svc port.AuthService, metrics *telemetry.AppMetrics) *AuthHandler {
	return &AuthHandler{svc: svc, metrics: metrics}
}

func (h *AuthHandler) recordAuth(c *gin.Context, operation, outcome string) {
	if h.metrics != nil {
		h.metrics.RecordAuthOperation(c.Request.Context(), operation, outcome)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.RegisterRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	_, err = h.svc.Register(ctx, &params)

	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			h.recordAuth(c, "register", "rejected")
			c.String(http.StatusBadRequest, "Email already exists")
			return
		}

		log.Error().Err(err).Msg("registration failed")
		h.recordAuth(c, "register", "error")
		helper.SendInternalError(c)
		return
	}

	h.recordAuth(c, "register", "success")
	c.String(http.StatusOK, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	token, err := h.svc.Login(ctx, &params)

	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			h.recordAuth(c, "login", "rejected")
			helper.SendUnauthorized(c, "Invalid email or password")
			return
		}

		log.Error().Err(err).Msg("login failed")
		h.recordAuth(c, "login", "error")
		helper.SendInternalError(c)
		return
	}

	h.recordAuth(c, "login", "success")
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}
