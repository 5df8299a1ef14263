package server

import (
	gm "jungle-engine/junglemg"
)

type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type AIMoveRequest struct {
	GameID     string `json:"game_id"`
	MovetimeMs int    `json:"movetime_ms"`
}

type StateResponse struct {
	GameID     string   `json:"game_id"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"to_move"`
	Status     string   `json:"status"`
	LegalMoves []string `json:"legal_moves"`
}

type AIMoveResponse struct {
	StateResponse
	EngineMove string `json:"engine_move"`
	Nodes      uint64 `json:"nodes"`
	TimeMs     int64  `json:"time_ms"`
}

func movesToDTO(moves []gm.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func statusString(p *gm.Position) string {
	switch p.Status() {
	case gm.SideToMoveLost:
		if p.SideToMove() == gm.Light {
			return "dark_wins"
		}
		return "light_wins"
	case gm.SideToMoveWon:
		if p.SideToMove() == gm.Light {
			return "light_wins"
		}
		return "dark_wins"
	}
	if p.IsRepetition() || p.Halfmove() >= 200 {
		return "draw"
	}
	return "ongoing"
}

func stateOf(g *Game) StateResponse {
	legal := g.Pos.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
	return StateResponse{
		GameID:     g.ID,
		FEN:        g.Pos.FEN(),
		ToMove:     g.Pos.SideToMove().String(),
		Status:     statusString(g.Pos),
		LegalMoves: movesToDTO(legal),
	}
}
