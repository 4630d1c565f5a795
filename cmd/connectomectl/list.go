package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
)

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	storeKind, dbPath := addStoreFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, closeFn, err := openRegistry(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := reg.Init(ctx); err != nil {
		return err
	}

	ids, err := reg.ListLayers(ctx)
	if err != nil {
		return err
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
