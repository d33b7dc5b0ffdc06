package handlers

import (
	"context"
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// getHandler implements GetHandler.
type getHandler struct {
	client sdk.Interface
}

// Handle executes a get operation.
func (h *getHandler) Handle(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("get request cannot be nil")
	}
	if err := validateKey(req.Kind, req.Key); err != nil {
		return nil, err
	}

	item, err := h.client.Get(ctx, req.Kind, req.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", req.Kind, req.Key, err)
	}

	return &GetResponse{Item: item}, nil
}
