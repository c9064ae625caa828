package api

import (
	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/services/spin"
)

type SpinResponse struct {
	Dispatched bool             `json:"dispatched"`
	SpinID     string           `json:"spin_id,omitempty"`
	Reels      []ReelResultView `json:"reels,omitempty"`
}

type ReelResultView struct {
	Reel        int    `json:"reel"`
	Position    int    `json:"position"`
	Symbol      string `json:"symbol,omitempty"`
	StopDelayMS int64  `json:"stop_delay_ms"`
}

type StateResponse struct {
	Reels []ReelStateView `json:"reels"`
}

type ReelStateView struct {
	Reel     int    `json:"reel"`
	State    string `json:"state"`
	Position int    `json:"position"`
	Offsets  []int  `json:"offsets"`
}

type HistoryResponse struct {
	Spins []SpinView `json:"spins"`
}

type SpinView struct {
	SpinID    string           `json:"spin_id"`
	CreatedAt string           `json:"created_at"`
	Reels     []ReelResultView `json:"reels"`
}

func toSpinResponse(output *spin.PlayOutput) SpinResponse {
	return SpinResponse{
		Dispatched: output.Dispatched,
		SpinID:     output.SpinID,
		Reels:      toReelResultViews(output.Results),
	}
}

func toReelResultViews(results []models.ReelResult) []ReelResultView {
	views := make([]ReelResultView, 0, len(results))
	for _, result := range results {
		views = append(views, ReelResultView{
			Reel:        result.Reel,
			Position:    result.Position,
			Symbol:      result.Symbol,
			StopDelayMS: result.StopDelay.Milliseconds(),
		})
	}
	return views
}

func toStateResponse(strips []renderer.StripView) StateResponse {
	response := StateResponse{
		Reels: make([]ReelStateView, 0, len(strips)),
	}
	for i, strip := range strips {
		response.Reels = append(response.Reels, ReelStateView{
			Reel:     i,
			State:    string(strip.State),
			Position: strip.Position,
			Offsets:  strip.Offsets,
		})
	}
	return response
}

func toHistoryResponse(spins []*models.Spin) HistoryResponse {
	response := HistoryResponse{
		Spins: make([]SpinView, 0, len(spins)),
	}
	for _, record := range spins {
		response.Spins = append(response.Spins, SpinView{
			SpinID:    record.ID,
			CreatedAt: record.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
			Reels:     toReelResultViews(record.Results),
		})
	}
	return response
}
