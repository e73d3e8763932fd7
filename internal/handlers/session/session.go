package session

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/dto"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/telegram"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/utils"
	"go.uber.org/zap"
)

const operatorTokenTTL = 12 * time.Hour

type Service interface {
	SignInExternal(ctx context.Context, ident domain.ExternalIdentity) (*domain.Account, error)
	Register(ctx context.Context, phone, name, password string) (*domain.Account, error)
	SignInPhone(ctx context.Context, phone, password string) (*domain.Account, error)
	SignInOperator(ctx context.Context, username, password string) (*domain.Account, error)
	SignOut(ctx context.Context) error
	Current() *domain.Account
}

type Verifier interface {
	User(raw string) (telegram.User, error)
}

type TokenIssuer interface {
	GenerateJWT(accountID, role string, expirationTime time.Time) (string, error)
}

type SessionHandler struct {
	service  Service
	verifier Verifier
	tokens   TokenIssuer
	now      func() time.Time
}

func New(service Service, verifier Verifier, tokens TokenIssuer) *SessionHandler {
	return &SessionHandler{
		service:  service,
		verifier: verifier,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Telegram godoc
//
//	@Summary		Sign in with Telegram
//	@Description	Validate Mini App init data and sign the device in as that Telegram user
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TelegramSignInRequestDTO	true	"Init data"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid init data"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Failure		503		{object}	utils.Response	"Telegram sign-in not configured"
//	@Router			/api/session/telegram [post]
func (h *SessionHandler) Telegram(w http.ResponseWriter, r *http.Request) {
	var req dto.TelegramSignInRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}

	user, err := h.verifier.User(req.InitData)
	switch {
	case errors.Is(err, telegram.ErrNotConfigured):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Telegram sign-in is not configured")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid init data")
		return
	}

	account, err := h.service.SignInExternal(r.Context(), domain.ExternalIdentity{
		ExternalID: user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	})
	if account == nil {
		if errors.Is(err, sessionservice.ErrEmptyIdentity) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadGateway, "Sign-in failed")
		return
	}
	if err != nil {
		// the device is signed in; linking is retried on the next sign-in
		zap.L().Warn("telegram account linking incomplete", zap.String("accountID", account.ID), zap.Error(err))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{Account: dto.AccountFromDomain(account)})
}

// Register godoc
//
//	@Summary		Register an account holder
//	@Description	Create an account holder identified by phone number
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Phone already registered"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Failure		502		{object}	utils.Response	"Remote store rejected the account"
//	@Failure		503		{object}	utils.Response	"Remote store unavailable"
//	@Router			/api/session/register [post]
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}

	account, err := h.service.Register(r.Context(), req.Phone, req.Name, req.Password)
	switch {
	case errors.Is(err, sessionservice.ErrPhoneTaken):
		utils.RespondWithError(w, http.StatusConflict, "Phone number already registered")
		return
	case errors.Is(err, sessionservice.ErrRemoteUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Remote store is unavailable, try again later")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusBadGateway, "Registration failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SessionResponseDTO{Account: dto.AccountFromDomain(account)})
}

// Login godoc
//
//	@Summary		Sign in an account holder
//	@Description	Sign in with phone number and password
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Router			/api/session/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}

	account, err := h.service.SignInPhone(r.Context(), req.Phone, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{Account: dto.AccountFromDomain(account)})
}

// Operator godoc
//
//	@Summary		Sign in the operator
//	@Description	Check the operator credentials and issue a Bearer token for the terminal API
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OperatorLoginRequestDTO	true	"Operator credentials"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/session/operator [post]
func (h *SessionHandler) Operator(w http.ResponseWriter, r *http.Request) {
	var req dto.OperatorLoginRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}

	account, err := h.service.SignInOperator(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.tokens.GenerateJWT(account.ID, string(account.Role), h.now().Add(operatorTokenTTL))
	if err != nil {
		zap.L().Error("can't generate operator token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{Account: dto.AccountFromDomain(account), Token: token})
}

// Current godoc
//
//	@Summary		Current session
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		404	{object}	utils.Response	"Signed out"
//	@Router			/api/session [get]
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	account := h.service.Current()
	if account == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{Account: dto.AccountFromDomain(account)})
}

// SignOut godoc
//
//	@Summary		Sign out
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session [delete]
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SignOut(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Sign-out failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Signed out"})
}
