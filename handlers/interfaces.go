// Package handlers provides the operations behind the substra commands.
// Handlers talk to the node through an sdk.Interface and return decoded
// items; printing is left to the caller.
package handlers

import (
	"context"

	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// ListHandler handles LIST operations for assets.
type ListHandler interface {
	// Handle executes a list operation based on the provided request
	Handle(ctx context.Context, req *ListRequest) (*ListResponse, error)
}

// GetHandler handles GET operations for assets.
type GetHandler interface {
	// Handle executes a get operation based on the provided request
	Handle(ctx context.Context, req *GetRequest) (*GetResponse, error)
}

// DescribeHandler fetches asset descriptions.
type DescribeHandler interface {
	Handle(ctx context.Context, req *DescribeRequest) (*DescribeResponse, error)
}

// DownloadHandler fetches asset files.
type DownloadHandler interface {
	Handle(ctx context.Context, req *DownloadRequest) (*DownloadResponse, error)
}

// LeaderboardHandler fetches objective leaderboards.
type LeaderboardHandler interface {
	Handle(ctx context.Context, req *LeaderboardRequest) (*LeaderboardResponse, error)
}

// AddHandler registers tasks.
type AddHandler interface {
	// Handle executes an add operation based on the provided request
	Handle(ctx context.Context, req *AddRequest) (*AddResponse, error)
}

// HandlerFactory creates handlers with a given client.
type HandlerFactory struct {
	client sdk.Interface
}

// NewHandlerFactory creates a new handler factory with the given client.
func NewHandlerFactory(client sdk.Interface) *HandlerFactory {
	return &HandlerFactory{client: client}
}

// List creates a new ListHandler.
func (f *HandlerFactory) List() ListHandler {
	return &listHandler{client: f.client}
}

// Get creates a new GetHandler.
func (f *HandlerFactory) Get() GetHandler {
	return &getHandler{client: f.client}
}

// Describe creates a new DescribeHandler.
func (f *HandlerFactory) Describe() DescribeHandler {
	return &describeHandler{client: f.client}
}

// Download creates a new DownloadHandler.
func (f *HandlerFactory) Download() DownloadHandler {
	return &downloadHandler{client: f.client}
}

// Leaderboard creates a new LeaderboardHandler.
func (f *HandlerFactory) Leaderboard() LeaderboardHandler {
	return &leaderboardHandler{client: f.client}
}

// Add creates a new AddHandler.
func (f *HandlerFactory) Add() AddHandler {
	return &addHandler{client: f.client}
}
