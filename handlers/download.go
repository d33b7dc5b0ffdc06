package handlers

import (
	"context"
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// downloadHandler implements DownloadHandler.
type downloadHandler struct {
	client sdk.Interface
}

// Handle downloads the file of an asset.
func (h *downloadHandler) Handle(ctx context.Context, req *DownloadRequest) (*DownloadResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("download request cannot be nil")
	}
	if err := validateKey(req.Kind, req.Key); err != nil {
		return nil, err
	}

	path, err := h.client.Download(ctx, req.Kind, req.Key, req.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s %s: %w", req.Kind, req.Key, err)
	}

	return &DownloadResponse{Path: path}, nil
}
