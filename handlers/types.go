package handlers

import (
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

// ListRequest represents a request to list the assets of a kind.
type ListRequest struct {
	// Kind is the asset kind to list
	Kind assets.Kind
	// Filter is an optional CEL expression applied to each item
	Filter string
	// Search holds server side search terms
	Search []string
}

// ListResponse contains the result of a list operation.
type ListResponse struct {
	// Items are the listed assets, filtered when a filter was given
	Items []printers.Item
	// Total is the number of items returned by the server before filtering
	Total int
}

// GetRequest represents a request to get one asset.
type GetRequest struct {
	Kind assets.Kind
	Key  string
}

// GetResponse contains the result of a get operation.
type GetResponse struct {
	Item printers.Item
}

// DescribeRequest represents a request for an asset description.
type DescribeRequest struct {
	Kind assets.Kind
	Key  string
}

// DescribeResponse contains a markdown description.
type DescribeResponse struct {
	Description string
}

// DownloadRequest represents a request to download an asset file.
type DownloadRequest struct {
	Kind assets.Kind
	Key  string
	// Folder is the destination directory, the working directory when empty
	Folder string
}

// DownloadResponse contains the written file path.
type DownloadResponse struct {
	Path string
}

// LeaderboardRequest represents a request for an objective leaderboard.
type LeaderboardRequest struct {
	ObjectiveKey string
	// Sort is asc or desc, desc when empty
	Sort string
}

// LeaderboardResponse contains an objective and its ranked testtuples.
type LeaderboardResponse struct {
	Leaderboard printers.Item
}

// AddRequest represents a request to register a task.
type AddRequest struct {
	// Kind is traintuple or testtuple
	Kind assets.Kind
	// Spec is the task definition sent to the node
	Spec printers.Item
	// ExistOK returns an already registered task instead of failing
	ExistOK bool
}

// AddResponse contains the registered task.
type AddResponse struct {
	Item printers.Item
}

func validateKey(kind assets.Kind, key string) error {
	if !assets.IsKnown(kind) {
		return fmt.Errorf("unknown asset %q", kind)
	}
	if key == "" {
		return fmt.Errorf("%s key cannot be empty", kind)
	}
	return nil
}
