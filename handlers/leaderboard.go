package handlers

import (
	"context"
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// leaderboardHandler implements LeaderboardHandler.
type leaderboardHandler struct {
	client sdk.Interface
}

// Handle fetches the leaderboard of an objective.
func (h *leaderboardHandler) Handle(ctx context.Context, req *LeaderboardRequest) (*LeaderboardResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("leaderboard request cannot be nil")
	}
	if err := validateKey(assets.Objective, req.ObjectiveKey); err != nil {
		return nil, err
	}

	sort := req.Sort
	if sort == "" {
		sort = sdk.SortDesc
	}
	if sort != sdk.SortAsc && sort != sdk.SortDesc {
		return nil, fmt.Errorf("invalid sort %q, expected %s or %s", req.Sort, sdk.SortAsc, sdk.SortDesc)
	}

	leaderboard, err := h.client.Leaderboard(ctx, req.ObjectiveKey, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard of objective %s: %w", req.ObjectiveKey, err)
	}

	return &LeaderboardResponse{Leaderboard: leaderboard}, nil
}
