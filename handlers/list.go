package handlers

import (
	"context"
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/filters"
	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// listHandler implements ListHandler.
type listHandler struct {
	client sdk.Interface
}

// Handle executes a list operation.
func (h *listHandler) Handle(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("list request cannot be nil")
	}
	if !assets.IsKnown(req.Kind) {
		return nil, fmt.Errorf("unknown asset %q", req.Kind)
	}

	// Compile first so a bad expression fails before any request is sent
	var filter *filters.Filter
	if req.Filter != "" {
		var err error
		if filter, err = filters.Compile(req.Filter); err != nil {
			return nil, err
		}
	}

	items, err := h.client.List(ctx, req.Kind, req.Search...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", req.Kind, err)
	}

	resp := &ListResponse{Items: items, Total: len(items)}
	if filter != nil {
		if resp.Items, err = filter.Apply(items); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
