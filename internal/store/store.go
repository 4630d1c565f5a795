package store

import "context"

// Store defines persistence operations for layer snapshots.
type Store interface {
	Init(ctx context.Context) error
	SaveLayer(ctx context.Context, record LayerRecord) error
	GetLayer(ctx context.Context, id string) (LayerRecord, bool, error)
	DeleteLayer(ctx context.Context, id string) error
	ListLayerIDs(ctx context.Context) ([]string, error)
}
