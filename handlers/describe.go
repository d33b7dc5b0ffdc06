package handlers

import (
	"context"
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// describeHandler implements DescribeHandler.
type describeHandler struct {
	client sdk.Interface
}

// Handle fetches the description of an asset.
func (h *describeHandler) Handle(ctx context.Context, req *DescribeRequest) (*DescribeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("describe request cannot be nil")
	}
	if err := validateKey(req.Kind, req.Key); err != nil {
		return nil, err
	}

	description, err := h.client.Describe(ctx, req.Kind, req.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s %s: %w", req.Kind, req.Key, err)
	}

	return &DescribeResponse{Description: description}, nil
}
