package sdk

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Fabien-GELUS/substra-mnist/assets"
)

// Mock is an in-memory implementation of Interface (for tests & local dev.
// purposes). Assets are indexed by their "key" field.
type Mock struct {
	mu sync.Mutex

	assets       map[assets.Kind]map[string]Asset
	descriptions map[string]string
	files        map[string][]byte
	leaderboards map[string]Asset

	// Err, when set, is returned by every call.
	Err error

	// Calls records the name of every method called, in order.
	Calls []string
}

var _ Interface = &Mock{}

// NewMock creates an empty mock.
func NewMock() *Mock {
	return &Mock{
		assets:       map[assets.Kind]map[string]Asset{},
		descriptions: map[string]string{},
		files:        map[string][]byte{},
		leaderboards: map[string]Asset{},
	}
}

// AddAsset stores asset under its "key" field.
func (m *Mock) AddAsset(kind assets.Kind, asset Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(kind, asset)
}

// SetDescription sets the description returned for key.
func (m *Mock) SetDescription(key, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.descriptions[key] = description
}

// SetFile sets the downloadable content of key.
func (m *Mock) SetFile(key string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = content
}

// SetLeaderboard sets the leaderboard returned for an objective.
func (m *Mock) SetLeaderboard(objectiveKey string, leaderboard Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboards[objectiveKey] = leaderboard
}

// List returns the stored assets of a kind ordered by key.
func (m *Mock) List(_ context.Context, kind assets.Kind, _ ...string) ([]Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("List"); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m.assets[kind]))
	for key := range m.assets[kind] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Asset, 0, len(keys))
	for _, key := range keys {
		result = append(result, m.assets[kind][key])
	}
	return result, nil
}

// Get returns a stored asset.
func (m *Mock) Get(_ context.Context, kind assets.Kind, key string) (Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("Get"); err != nil {
		return nil, err
	}
	return m.lookup(kind, key)
}

// Describe returns the description set for key.
func (m *Mock) Describe(_ context.Context, kind assets.Kind, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("Describe"); err != nil {
		return "", err
	}
	if _, err := m.lookup(kind, key); err != nil {
		return "", err
	}
	description, ok := m.descriptions[key]
	if !ok {
		return "", notFound(http.MethodGet, "description/"+key)
	}
	return description, nil
}

// Download writes the file set for key into dir.
func (m *Mock) Download(_ context.Context, kind assets.Kind, key, dir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("Download"); err != nil {
		return "", err
	}

	source, ok := downloadSources[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s cannot be downloaded", ErrInvalidAsset, kind)
	}
	if _, err := m.lookup(kind, key); err != nil {
		return "", err
	}
	content, ok := m.files[key]
	if !ok {
		return "", notFound(http.MethodGet, "file/"+key)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(dir, source.fileName)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// Leaderboard returns the leaderboard set for an objective.
func (m *Mock) Leaderboard(_ context.Context, objectiveKey, order string) (Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("Leaderboard"); err != nil {
		return nil, err
	}
	if order != "" && order != SortAsc && order != SortDesc {
		return nil, fmt.Errorf("invalid sort %q, expected %s or %s", order, SortAsc, SortDesc)
	}
	leaderboard, ok := m.leaderboards[objectiveKey]
	if !ok {
		return nil, notFound(http.MethodGet, "objective/"+objectiveKey+"/leaderboard/")
	}
	return leaderboard, nil
}

// AddTraintuple stores a training task.
func (m *Mock) AddTraintuple(_ context.Context, spec Asset, existOK bool) (Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("AddTraintuple"); err != nil {
		return nil, err
	}
	return m.add(assets.Traintuple, spec, existOK)
}

// AddTesttuple stores a testing task.
func (m *Mock) AddTesttuple(_ context.Context, spec Asset, existOK bool) (Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.call("AddTesttuple"); err != nil {
		return nil, err
	}
	return m.add(assets.Testtuple, spec, existOK)
}

func (m *Mock) call(name string) error {
	m.Calls = append(m.Calls, name)
	return m.Err
}

func (m *Mock) add(kind assets.Kind, spec Asset, existOK bool) (Asset, error) {
	key, _ := spec["key"].(string)
	if key == "" {
		key = uuid.NewString()
	}

	if existing, ok := m.assets[kind][key]; ok {
		if existOK {
			return existing, nil
		}
		return nil, &RequestError{
			Method:     http.MethodPost,
			URL:        assets.URLSegment(kind) + "/",
			StatusCode: http.StatusConflict,
			Body:       fmt.Sprintf(`{"pkhash": %q}`, key),
		}
	}

	created := make(Asset, len(spec)+1)
	for k, v := range spec {
		created[k] = v
	}
	created["key"] = key
	m.store(kind, created)
	return created, nil
}

func (m *Mock) store(kind assets.Kind, asset Asset) {
	key, _ := asset["key"].(string)
	if m.assets[kind] == nil {
		m.assets[kind] = map[string]Asset{}
	}
	m.assets[kind][key] = asset
}

func (m *Mock) lookup(kind assets.Kind, key string) (Asset, error) {
	asset, ok := m.assets[kind][key]
	if !ok {
		return nil, notFound(http.MethodGet, assets.URLSegment(kind)+"/"+key+"/")
	}
	return asset, nil
}

func notFound(method, u string) error {
	return &RequestError{Method: method, URL: u, StatusCode: http.StatusNotFound}
}
