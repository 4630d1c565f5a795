package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"connectome/connections"
)

func runActivity(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ContinueOnError)
	storeKind, dbPath := addStoreFlags(fs)
	id := fs.String("id", "", "layer id")
	inputCSV := fs.String("input", "", "comma-separated presynaptic cell indices")
	threshold := fs.Float64("threshold", 0.5, "connection threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("activity: --id is required")
	}

	input, err := parseCellList(*inputCSV)
	if err != nil {
		return fmt.Errorf("activity: --input: %w", err)
	}

	reg, closeFn, err := openRegistry(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := reg.Init(ctx); err != nil {
		return err
	}

	layer, err := reg.LoadLayer(ctx, *id)
	if err != nil {
		return err
	}

	connected := make([]int, layer.SegmentFlatListLength())
	potential := make([]int, layer.SegmentFlatListLength())
	if err := layer.ComputeActivity(connected, potential, input, float32(*threshold)); err != nil {
		return err
	}

	for s := range potential {
		if potential[s] == 0 {
			continue
		}
		fmt.Printf("segment=%d connected=%d potential=%d\n", s, connected[s], potential[s])
	}
	return nil
}

func parseCellList(csv string) ([]connections.CellID, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	cells := make([]connections.CellID, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid cell index %q: %w", p, err)
		}
		cells = append(cells, connections.CellID(v))
	}
	return cells, nil
}
