// Package sdk talks to the REST API of a platform node.
package sdk

import (
	"context"

	"github.com/Fabien-GELUS/substra-mnist/assets"
)

// Asset is a decoded asset or task as returned by the API.
type Asset = map[string]interface{}

// Sort orders of a leaderboard.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Interface describes the node API.
type Interface interface {
	// List returns every asset of a kind. Filters are forwarded to the
	// server as search terms.
	List(ctx context.Context, kind assets.Kind, filters ...string) ([]Asset, error)

	// Get returns one asset by key.
	Get(ctx context.Context, kind assets.Kind, key string) (Asset, error)

	// Describe returns the markdown description of an asset.
	Describe(ctx context.Context, kind assets.Kind, key string) (string, error)

	// Download fetches the main file of an algo, objective or dataset
	// into dir and returns the written path.
	Download(ctx context.Context, kind assets.Kind, key, dir string) (string, error)

	// Leaderboard returns an objective and its ranked testtuples.
	Leaderboard(ctx context.Context, objectiveKey, sort string) (Asset, error)

	// AddTraintuple registers a training task. When existOK is set an
	// already registered task is returned instead of an error.
	AddTraintuple(ctx context.Context, spec Asset, existOK bool) (Asset, error)

	// AddTesttuple registers a testing task.
	AddTesttuple(ctx context.Context, spec Asset, existOK bool) (Asset, error)
}
