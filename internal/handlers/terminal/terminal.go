package terminal

//go:generate mockgen -source=terminal.go -destination=mock_terminal.go -package=terminal

import (
	"context"
	"errors"
	"net/http"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/dto"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/statsservice"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/terminalservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/auth"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/utils"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Load(ctx context.Context) terminalservice.View
	ChooseKind(kind domain.Kind) (terminalservice.View, error)
	Scan(ctx context.Context, payload string) (terminalservice.View, error)
	Select(accountID string) (terminalservice.View, error)
	EnterAmount(amount decimal.Decimal) (terminalservice.View, error)
	Submit(ctx context.Context, operatorID string) (domain.Transaction, error)
	Cancel() (terminalservice.View, error)
	State() terminalservice.View
}

type Stats interface {
	Operator(ctx context.Context) statsservice.OperatorStats
}

type TerminalHandler struct {
	service Service
	stats   Stats
}

func New(service Service, stats Stats) *TerminalHandler {
	return &TerminalHandler{
		service: service,
		stats:   stats,
	}
}

// State godoc
//
//	@Summary		Terminal state
//	@Description	Current draft, working lists and shop statistics
//	@Tags			Terminal
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TerminalStateDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/terminal [get]
func (h *TerminalHandler) State(w http.ResponseWriter, r *http.Request) {
	stats := h.stats.Operator(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, stateDTO(h.service.State(), &stats))
}

// Load godoc
//
//	@Summary		Load working lists
//	@Description	Fill the terminal's account and transaction lists from the cache
//	@Tags			Terminal
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TerminalStateDTO
//	@Router			/api/terminal/load [post]
func (h *TerminalHandler) Load(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, stateDTO(h.service.Load(r.Context()), nil))
}

// Kind godoc
//
//	@Summary		Choose transaction kind
//	@Tags			Terminal
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.KindRequestDTO	true	"EARN or REDEEM"
//	@Success		200		{object}	dto.TerminalStateDTO
//	@Failure		409		{object}	utils.Response	"Submission in progress"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Router			/api/terminal/kind [post]
func (h *TerminalHandler) Kind(w http.ResponseWriter, r *http.Request) {
	var req dto.KindRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}
	view, err := h.service.ChooseKind(domain.Kind(req.Kind))
	h.respond(w, view, err)
}

// Scan godoc
//
//	@Summary		Scan a QR code
//	@Description	Resolve a scanned payload by QR token first, account id second
//	@Tags			Terminal
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ScanRequestDTO	true	"Scanned payload"
//	@Success		200		{object}	dto.TerminalStateDTO
//	@Failure		404		{object}	dto.UnknownIdentityDTO
//	@Failure		409		{object}	utils.Response	"Submission in progress"
//	@Router			/api/terminal/scan [post]
func (h *TerminalHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.ScanRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}
	view, err := h.service.Scan(r.Context(), req.Payload)
	h.respond(w, view, err)
}

// Select godoc
//
//	@Summary		Select an account
//	@Tags			Terminal
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SelectRequestDTO	true	"Account id"
//	@Success		200		{object}	dto.TerminalStateDTO
//	@Failure		404		{object}	dto.UnknownIdentityDTO
//	@Router			/api/terminal/select [post]
func (h *TerminalHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}
	view, err := h.service.Select(req.AccountID)
	h.respond(w, view, err)
}

// Amount godoc
//
//	@Summary		Enter the gross amount
//	@Description	Dots group thousands, a comma separates the fraction
//	@Tags			Terminal
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount as typed"
//	@Success		200		{object}	dto.TerminalStateDTO
//	@Failure		409		{object}	utils.Response	"No draft"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Router			/api/terminal/amount [post]
func (h *TerminalHandler) Amount(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}
	amount, err := validate.ParseAmount(req.Amount)
	if err != nil {
		utils.RespondWithValidation(w, map[string]string{"amount": err.Error()})
		return
	}
	view, err := h.service.EnterAmount(amount)
	h.respond(w, view, err)
}

// Submit godoc
//
//	@Summary		Submit the draft
//	@Description	Apply the transaction locally, persist it and reconcile; a failed write is rolled back
//	@Tags			Terminal
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TerminalStateDTO
//	@Failure		409	{object}	utils.Response	"Submission in progress"
//	@Failure		422	{object}	utils.ValidationResponse
//	@Failure		502	{object}	utils.Response	"Write failed, rolled back"
//	@Router			/api/terminal/submit [post]
func (h *TerminalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := auth.AccountIDFromContext(r.Context())
	_, err := h.service.Submit(r.Context(), operatorID)
	h.respond(w, h.service.State(), err)
}

// Cancel godoc
//
//	@Summary		Cancel the draft
//	@Tags			Terminal
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TerminalStateDTO
//	@Failure		409	{object}	utils.Response	"Submission in progress"
//	@Router			/api/terminal/cancel [post]
func (h *TerminalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Cancel()
	h.respond(w, view, err)
}

func (h *TerminalHandler) respond(w http.ResponseWriter, view terminalservice.View, err error) {
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, stateDTO(view, nil))
		return
	}

	var (
		unknown  *domain.UnknownIdentityError
		invalid  *domain.ValidationError
		writeErr *domain.WriteError
	)
	switch {
	case errors.As(err, &unknown):
		utils.RespondWithJSON(w, http.StatusNotFound, dto.UnknownIdentityDTO{
			Message: unknown.Error(),
			Scanned: unknown.Scanned,
			Known:   unknown.Known,
		})
	case errors.As(err, &invalid):
		utils.RespondWithValidation(w, map[string]string{invalid.Field: invalid.Reason})
	case errors.As(err, &writeErr):
		utils.RespondWithError(w, http.StatusBadGateway, writeErr.Error())
	case errors.Is(err, terminalservice.ErrBusy),
		errors.Is(err, terminalservice.ErrInvalidTransition),
		errors.Is(err, terminalservice.ErrNoSelection),
		errors.Is(err, terminalservice.ErrKindRequired):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("terminal action failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func stateDTO(v terminalservice.View, stats *statsservice.OperatorStats) dto.TerminalStateDTO {
	out := dto.TerminalStateDTO{
		State:        string(v.State),
		Kind:         v.Kind,
		Selected:     dto.AccountFromDomain(v.Selected),
		Amount:       v.Amount,
		Accounts:     make([]dto.AccountDTO, 0, len(v.Accounts)),
		Transactions: make([]dto.TransactionDTO, 0, len(v.Transactions)),
		LastOutcome:  string(v.LastOutcome),
	}
	if v.LastError != nil {
		out.LastError = v.LastError.Error()
	}
	for i := range v.Accounts {
		out.Accounts = append(out.Accounts, *dto.AccountFromDomain(&v.Accounts[i]))
	}
	for _, t := range v.Transactions {
		item := dto.TransactionFromDomain(t)
		item.CustomerName = statsservice.DeletedUser
		if a, ok := domain.FindAccount(v.Accounts, t.AccountID); ok {
			item.CustomerName = a.DisplayName
		}
		out.Transactions = append(out.Transactions, item)
	}
	if p := v.Preview; p != nil {
		out.Preview = &dto.PreviewDTO{
			Kind:             p.Kind,
			GrossAmount:      p.GrossAmount,
			CashbackDelta:    p.CashbackDelta,
			CurrentBalance:   p.CurrentBalance,
			PredictedBalance: p.PredictedBalance,
			CanSubmit:        p.CanSubmit,
		}
		if p.Error != nil {
			out.Preview.Reason = p.Error.Error()
		}
	}
	if stats != nil {
		out.Stats = &dto.OperatorStatsDTO{
			Members: stats.Members,
			Volume:  stats.Volume,
			Recent:  make([]dto.TransactionDTO, 0, len(stats.Recent)),
		}
		for _, e := range stats.Recent {
			item := dto.TransactionFromDomain(e.Transaction)
			item.CustomerName = e.CustomerName
			out.Stats.Recent = append(out.Stats.Recent, item)
		}
	}
	return out
}
