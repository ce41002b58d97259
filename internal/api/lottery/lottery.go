package lottery

import (
	dto "lottery_backend/internal/api/dto/lottery"
	"lottery_backend/internal/converter"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/service"
	"lottery_backend/pkg/req"
	"lottery_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultTransfersLimit = 50
	maxTransfersLimit     = 500
)

type HandlerDeps struct {
	Serv service.LotteryService
}

type Handler struct {
	serv service.LotteryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Routes - точки входа лотереи. Все, что не совпало, уходит в Default
func (h *Handler) Routes(r chi.Router) {
	r.Post("/buy-ticket", h.BuyTicket)
	r.Post("/change-ticket-cost", h.ChangeTicketCost)
	r.Post("/change-max-tickets", h.ChangeMaxTickets)
	r.Post("/end-game", h.EndGame)
	r.Post("/default", h.Default)

	r.Get("/state", h.State)
	r.Get("/transfers", h.Transfers)
	r.Get("/stats", h.Stats)

	r.NotFound(h.Default)
	r.MethodNotAllowed(h.Default)
}

func (h *Handler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BuyTicketRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.BuyTicket(r.Context(), converter.ToBuyTicket(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCallResponse(*result))
}

func (h *Handler) ChangeTicketCost(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ChangeTicketCostRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.ChangeTicketCost(r.Context(), converter.ToChangeTicketCost(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCallResponse(*result))
}

func (h *Handler) ChangeMaxTickets(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ChangeMaxTicketsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.ChangeMaxTickets(r.Context(), converter.ToChangeMaxTickets(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCallResponse(*result))
}

func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EndGameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.EndGame(r.Context(), converter.ToEndGame(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCallResponse(*result))
}

// Default - неизвестный вызов или голый перевод. Тело может быть любым,
// сумма берется, если ее удалось прочитать
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	var amount uint64
	payload, err := req.Decode[dto.DefaultRequest](r.Body)
	if err == nil {
		amount = payload.Amount
	}

	err = h.serv.Reject(r.Context(), lottery.Mutez(amount))
	writeError(w, err)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	round, err := h.serv.State(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

func (h *Handler) Transfers(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultTransfersLimit)
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil || parsed == 0 || parsed > maxTransfersLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	transfers, err := h.serv.Transfers(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransfersResponse(transfers))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
