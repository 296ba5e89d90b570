package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	apperrors "github.com/AshleyKendi786/Delivery-App/internal/errors"
)

type Controller struct {
	signup SignupService
	login  LoginService
	logger *zap.Logger
}

func NewController(signup SignupService, login LoginService, logger *zap.Logger) *Controller {
	return &Controller{
		signup: signup,
		login:  login,
		logger: logger,
	}
}

func (c *Controller) HandleSignup(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateSignupRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	user, err := c.signup.Signup(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Type:  user.Type,
	})
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateLoginRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	user, token, err := c.login.Login(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Type:  user.Type,
		Token: token,
	})
}

func validateSignupRequest(req SignupRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Name) < 2 || len(req.Name) > 50 {
		msg := "name must be between 2 and 50 characters"
		if req.Name == "" {
			msg = "name is required"
		}
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: msg})
	}

	if !validEmail(req.Email) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(req.Password) < 6 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if !domain.ValidRole(req.Type) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "type",
			Message: "type must be customer or delivery",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validateLoginRequest(req LoginRequest) error {
	var details []apperrors.ValidationDetail

	if !validEmail(req.Email) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password is required",
		})
	}

	if !domain.ValidRole(req.Type) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "type",
			Message: "type must be customer or delivery",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
