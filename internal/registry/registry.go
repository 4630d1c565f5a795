// Package registry manages a directory of named connectivity layers.
// A single connections.Connections value models one layer; real HTM
// networks keep many of them in flight at once (one per cortical
// layer/region), so this package gives callers a place to create,
// snapshot, restore and list them by name.
package registry

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"

	"connectome/connections"
	"connectome/internal/store"
)

// Registry owns zero or more named connectivity layers backed by a
// store.Store. It does not itself hold any layer in memory beyond the
// caller's own *connections.Connections values — CreateLayer and
// LoadLayer simply hand the caller a fresh store to mutate, and
// SaveLayer snapshots it back out.
type Registry struct {
	backend store.Store
}

func New(backend store.Store) *Registry {
	return &Registry{backend: backend}
}

// Init prepares the backing store for use.
func (r *Registry) Init(ctx context.Context) error {
	return r.backend.Init(ctx)
}

// CreateLayer allocates a new named connectivity layer with numCells
// cells. If id is empty, a random UUID is generated.
func (r *Registry) CreateLayer(ctx context.Context, id string, numCells int) (string, *connections.Connections, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists, err := r.backend.GetLayer(ctx, id); err != nil {
		return "", nil, err
	} else if exists {
		return "", nil, fmt.Errorf("registry: layer %q already exists", id)
	}

	layer := connections.New(numCells)
	if err := r.SaveLayer(ctx, id, layer); err != nil {
		return "", nil, err
	}
	return id, layer, nil
}

// SaveLayer snapshots layer and persists it under id, overwriting any
// prior snapshot.
func (r *Registry) SaveLayer(ctx context.Context, id string, layer *connections.Connections) error {
	var buf bytes.Buffer
	if err := layer.Save(&buf); err != nil {
		return fmt.Errorf("registry: save layer %q: %w", id, err)
	}

	record := store.LayerRecord{
		SchemaVersion: store.CurrentSchemaVersion,
		ID:            id,
		NumCells:      layer.NumCells(),
		Snapshot:      buf.Bytes(),
		UpdatedAtUTC:  strftime.Format("%Y-%m-%dT%H:%M:%SZ", time.Now().UTC()),
	}
	return r.backend.SaveLayer(ctx, record)
}

// LoadLayer restores the named layer from its most recent snapshot.
func (r *Registry) LoadLayer(ctx context.Context, id string) (*connections.Connections, error) {
	record, ok, err := r.backend.GetLayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("registry: load layer %q: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("registry: layer %q not found", id)
	}

	layer, err := connections.Load(bytes.NewReader(record.Snapshot))
	if err != nil {
		return nil, fmt.Errorf("registry: load layer %q: %w", id, err)
	}
	return layer, nil
}

// DeleteLayer removes a layer's snapshot permanently.
func (r *Registry) DeleteLayer(ctx context.Context, id string) error {
	if _, ok, err := r.backend.GetLayer(ctx, id); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("registry: layer %q not found", id)
	}
	return r.backend.DeleteLayer(ctx, id)
}

// ListLayers returns the ids of every currently persisted layer.
func (r *Registry) ListLayers(ctx context.Context) ([]string, error) {
	return r.backend.ListLayerIDs(ctx)
}

// LayerInfo is a summary row for CLI/inspection use.
type LayerInfo struct {
	ID           string
	NumCells     int
	SnapshotSize int
	UpdatedAtUTC string
}

// Describe returns summary metadata for id without fully decoding its
// snapshot into a *connections.Connections.
func (r *Registry) Describe(ctx context.Context, id string) (LayerInfo, error) {
	record, ok, err := r.backend.GetLayer(ctx, id)
	if err != nil {
		return LayerInfo{}, err
	}
	if !ok {
		return LayerInfo{}, fmt.Errorf("registry: layer %q not found", id)
	}
	return LayerInfo{
		ID:           record.ID,
		NumCells:     record.NumCells,
		SnapshotSize: len(record.Snapshot),
		UpdatedAtUTC: record.UpdatedAtUTC,
	}, nil
}
