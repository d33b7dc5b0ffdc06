package handlers

import (
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/printers"
	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

// addHandler implements AddHandler.
type addHandler struct {
	client sdk.Interface
}

// Handle registers a traintuple or a testtuple.
func (h *addHandler) Handle(ctx context.Context, req *AddRequest) (*AddResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("add request cannot be nil")
	}
	if len(req.Spec) == 0 {
		return nil, fmt.Errorf("%s spec cannot be empty", req.Kind)
	}

	var (
		item printers.Item
		err  error
	)
	switch req.Kind {
	case assets.Traintuple:
		item, err = h.client.AddTraintuple(ctx, req.Spec, req.ExistOK)
	case assets.Testtuple:
		item, err = h.client.AddTesttuple(ctx, req.Spec, req.ExistOK)
	default:
		return nil, fmt.Errorf("%w: cannot add %s, expected %s or %s", sdk.ErrInvalidAsset, req.Kind, assets.Traintuple, assets.Testtuple)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", req.Kind, err)
	}

	return &AddResponse{Item: item}, nil
}

// LoadSpec reads a task definition from a JSON or YAML file.
func LoadSpec(path string) (printers.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	spec := printers.Item{}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}
	return spec, nil
}
