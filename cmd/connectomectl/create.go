package main

import (
	"context"
	"flag"
	"fmt"
)

func runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	storeKind, dbPath := addStoreFlags(fs)
	id := fs.String("id", "", "layer id (generated if omitted)")
	cells := fs.Int("cells", 0, "size of the fixed cell universe")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cells <= 0 {
		return fmt.Errorf("create: --cells must be > 0")
	}

	reg, closeFn, err := openRegistry(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := reg.Init(ctx); err != nil {
		return err
	}

	gotID, _, err := reg.CreateLayer(ctx, *id, *cells)
	if err != nil {
		return err
	}

	fmt.Printf("created layer id=%s cells=%d\n", gotID, *cells)
	return nil
}
