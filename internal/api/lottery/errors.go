package lottery

import (
	"errors"
	"log"
	dto "lottery_backend/internal/api/dto/lottery"
	"lottery_backend/internal/lottery"
	lotteryService "lottery_backend/internal/service/lottery"
	"lottery_backend/pkg/resp"
	"net/http"
)

var statusByCode = map[string]int{
	"insufficient_tickets":  http.StatusBadRequest,
	"insufficient_payment":  http.StatusBadRequest,
	"balance_overflow":      http.StatusBadRequest,
	"not_authorized":        http.StatusForbidden,
	"round_already_started": http.StatusConflict,
	"no_change_requested":   http.StatusConflict,
	"game_not_yet_ended":    http.StatusConflict,
	"operation_not_allowed": http.StatusMethodNotAllowed,
	"winner_lookup_failed":  http.StatusInternalServerError,
}

// writeError - ошибка лотереи в json с кодом. Прочие ошибки не раскрываются клиенту
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, lotteryService.ErrNoCaller) {
		http.Error(w, "caller not found", http.StatusUnauthorized)
		return
	}

	code := lottery.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		log.Println("lottery call error:", err)
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{
			Code:  "internal",
			Error: "internal error",
		})
		return
	}

	resp.WriteJSONResponse(w, status, dto.ErrorResponse{
		Code:  code,
		Error: err.Error(),
	})
}
