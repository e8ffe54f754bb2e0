package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	ResendOTP(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	registerResp, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful, verify the OTP sent to your email", registerResp)
}

// VerifyOTP implements AuthHandler.
func (a *AuthHandlerImpl) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var verifyReq auth.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&verifyReq); err != nil {
		slog.Error("VerifyOTP decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := verifyReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.VerifyOTP(r.Context(), verifyReq); err != nil {
		slog.Error("VerifyOTP service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account verified successfully", nil)
}

// ResendOTP implements AuthHandler.
func (a *AuthHandlerImpl) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var resendReq struct {
		UserID string `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&resendReq); err != nil {
		slog.Error("ResendOTP decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if resendReq.UserID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	if err := a.authService.ResendOTP(r.Context(), resendReq.UserID); err != nil {
		slog.Error("ResendOTP service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "A new OTP has been sent", nil)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTracking(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// refreshTokenFromRequest reads the refresh token from the cookie, falling
// back to the JSON body for non-browser clients.
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.BadRequest(w, "Refresh token is required", nil)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshToken, sessionTracking(r))
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Token refreshed", tokenResponse)
}
