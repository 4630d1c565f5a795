package main

import (
	"context"
	"flag"
	"fmt"
)

func runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	storeKind, dbPath := addStoreFlags(fs)
	id := fs.String("id", "", "layer id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("delete: --id is required")
	}

	reg, closeFn, err := openRegistry(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := reg.Init(ctx); err != nil {
		return err
	}

	if err := reg.DeleteLayer(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("deleted layer id=%s\n", *id)
	return nil
}
