package converter

import (
	dto "lottery_backend/internal/api/dto/lottery"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
	"time"
)

func ToBuyTicket(req dto.BuyTicketRequest) model.BuyTicket {
	return model.BuyTicket{
		NumTickets: req.NumTickets,
		Amount:     lottery.Mutez(req.Amount),
	}
}

func ToChangeTicketCost(req dto.ChangeTicketCostRequest) model.ChangeTicketCost {
	return model.ChangeTicketCost{
		NewCost: lottery.Mutez(req.NewCost),
		Amount:  lottery.Mutez(req.Amount),
	}
}

func ToChangeMaxTickets(req dto.ChangeMaxTicketsRequest) model.ChangeMaxTickets {
	return model.ChangeMaxTickets{
		NewMax: req.NewMax,
		Amount: lottery.Mutez(req.Amount),
	}
}

func ToEndGame(req dto.EndGameRequest) model.EndGame {
	return model.EndGame{
		RandomNumber: req.RandomNumber,
		Amount:       lottery.Mutez(req.Amount),
	}
}

func ToRoundResponse(round lottery.Round) dto.RoundResponse {
	players := make([]string, len(round.Players))
	for i, p := range round.Players {
		players[i] = string(p)
	}
	return dto.RoundResponse{
		Players:          players,
		TicketCost:       uint64(round.TicketCost),
		TicketsAvailable: round.TicketsAvailable,
		StartingTickets:  round.StartingTickets,
		MaxTickets:       round.MaxTickets,
		Admin:            string(round.Admin),
		Balance:          uint64(round.Balance),
	}
}

func ToTransfersResponse(transfers []model.TransferRecord) []dto.TransferResponse {
	result := make([]dto.TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = dto.TransferResponse{
			ID:        t.ID.String(),
			Operation: t.Operation,
			To:        string(t.To),
			Amount:    uint64(t.Amount),
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return result
}

func ToCallResponse(res model.CallResult) dto.CallResponse {
	return dto.CallResponse{
		Round:     ToRoundResponse(res.Round),
		Transfers: ToTransfersResponse(res.Transfers),
	}
}

func ToStatsResponse(stats model.Stats) dto.StatsResponse {
	draws := make([]dto.DrawResponse, len(stats.Draws))
	for i, d := range stats.Draws {
		draws[i] = dto.DrawResponse{
			Timestamp:    d.Timestamp.UTC().Format(time.RFC3339),
			RandomNumber: d.RandomNumber,
			Winner:       string(d.Winner),
			Payout:       uint64(d.Payout),
		}
	}
	return dto.StatsResponse{
		TotalCalls:    stats.TotalCalls,
		RejectedCalls: stats.RejectedCalls,
		TicketsSold:   stats.TicketsSold,
		TotalPaid:     uint64(stats.TotalPaid),
		TotalRefunded: uint64(stats.TotalRefunded),
		TotalPayout:   uint64(stats.TotalPayout),
		Draws:         draws,
	}
}
