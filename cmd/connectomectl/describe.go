package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

func runDescribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	storeKind, dbPath := addStoreFlags(fs)
	id := fs.String("id", "", "layer id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("describe: --id is required")
	}

	reg, closeFn, err := openRegistry(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := reg.Init(ctx); err != nil {
		return err
	}

	info, err := reg.Describe(ctx, *id)
	if err != nil {
		return err
	}

	size := humanize.Bytes(uint64(info.SnapshotSize))
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("%-12s %s\n%-12s %d\n%-12s %s\n%-12s %s\n",
			"id", info.ID, "cells", info.NumCells, "snapshot", size, "updated", info.UpdatedAtUTC)
		return nil
	}

	fmt.Printf("id=%s cells=%d snapshot=%s updated=%s\n", info.ID, info.NumCells, size, info.UpdatedAtUTC)
	return nil
}
