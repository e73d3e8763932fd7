package holder

//go:generate mockgen -source=holder.go -destination=mock_holder.go -package=holder

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/dto"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/refresh"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/statsservice"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/utils"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventSession = "session"
	EventRefresh = "refresh"
)

type Session interface {
	Current() *domain.Account
}

type Stats interface {
	Holder(ctx context.Context, accountID string) statsservice.HolderStats
}

type Scheduler interface {
	SetVisible(visible bool)
	Cycle(ctx context.Context) (refresh.Update, bool)
}

type HolderHandler struct {
	session   Session
	stats     Stats
	scheduler Scheduler
	hub       *Hub
	upgrader  websocket.Upgrader
}

func New(session Session, stats Stats, scheduler Scheduler, hub *Hub, allowedOrigins []string) *HolderHandler {
	return &HolderHandler{
		session:   session,
		stats:     stats,
		scheduler: scheduler,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
					return true
				}
				if slices.Contains(allowedOrigins, origin) {
					return true
				}
				zap.L().Warn("holder stream origin rejected", zap.String("origin", origin))
				return false
			},
		},
	}
}

// Dashboard godoc
//
//	@Summary		Holder dashboard
//	@Description	Balance, QR token, tier and recent transactions of the signed-in account holder
//	@Tags			Holder
//	@Produce		json
//	@Success		200	{object}	dto.HolderDashboardDTO
//	@Failure		401	{object}	utils.Response	"No holder session"
//	@Router			/api/holder [get]
func (h *HolderHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	account, ok := h.holder(w)
	if !ok {
		return
	}
	stats := h.stats.Holder(r.Context(), account.ID)
	utils.RespondWithJSON(w, http.StatusOK, dto.HolderDashboardDTO{
		Account:      dto.AccountFromDomain(account),
		Tier:         string(stats.Tier),
		TotalEarned:  stats.TotalEarned,
		Transactions: dto.TransactionsFromDomain(stats.Recent),
	})
}

// Visibility godoc
//
//	@Summary		Report dashboard visibility
//	@Description	Polling runs only while the holder dashboard is visible
//	@Tags			Holder
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VisibilityRequestDTO	true	"Visibility"
//	@Success		200		{object}	utils.Response
//	@Failure		422		{object}	utils.ValidationResponse
//	@Router			/api/holder/visibility [post]
func (h *HolderHandler) Visibility(w http.ResponseWriter, r *http.Request) {
	var req dto.VisibilityRequestDTO
	if !utils.Decode(w, r, &req) {
		return
	}
	h.scheduler.SetVisible(*req.Visible)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "OK"})
}

// Refresh godoc
//
//	@Summary		Refresh now
//	@Description	Run one refresh cycle immediately
//	@Tags			Holder
//	@Produce		json
//	@Success		200	{object}	dto.HolderEventDTO
//	@Failure		401	{object}	utils.Response	"No holder session"
//	@Router			/api/holder/refresh [post]
func (h *HolderHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	update, ok := h.scheduler.Cycle(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "No account holder signed in")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, refreshEvent(update))
}

// Stream godoc
//
//	@Summary		Live updates
//	@Description	WebSocket stream of session and refresh events
//	@Tags			Holder
//	@Success		101
//	@Failure		401	{object}	utils.Response	"No holder session"
//	@Router			/api/holder/stream [get]
func (h *HolderHandler) Stream(w http.ResponseWriter, r *http.Request) {
	account, ok := h.holder(w)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("holder stream upgrade failed", zap.Error(err))
		return
	}
	first, err := json.Marshal(sessionEvent(account))
	if err != nil {
		first = nil
	}
	h.hub.serve(conn, first)
}

// OnSession forwards session changes to open streams.
func (h *HolderHandler) OnSession(account *domain.Account) {
	h.hub.Publish(sessionEvent(account))
}

// OnRefresh forwards refresh results to open streams.
func (h *HolderHandler) OnRefresh(update refresh.Update) {
	h.hub.Publish(refreshEvent(update))
}

func (h *HolderHandler) holder(w http.ResponseWriter) (*domain.Account, bool) {
	account := h.session.Current()
	if account == nil || account.IsOperator() {
		utils.RespondWithError(w, http.StatusUnauthorized, "No account holder signed in")
		return nil, false
	}
	return account, true
}

func sessionEvent(account *domain.Account) dto.HolderEventDTO {
	return dto.HolderEventDTO{Type: EventSession, Account: dto.AccountFromDomain(account)}
}

func refreshEvent(u refresh.Update) dto.HolderEventDTO {
	return dto.HolderEventDTO{
		Type:         EventRefresh,
		Account:      dto.AccountFromDomain(u.Account),
		Transactions: dto.TransactionsFromDomain(u.Transactions),
	}
}
