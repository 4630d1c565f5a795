package main

import (
	"flag"

	"connectome/internal/registry"
	"connectome/internal/store"
)

func addStoreFlags(fs *flag.FlagSet) (storeKind, dbPath *string) {
	storeKind = fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath = fs.String("db-path", "connectome.db", "sqlite database path (ignored for the memory backend)")
	return storeKind, dbPath
}

func openRegistry(storeKind, dbPath string) (*registry.Registry, func(), error) {
	backend, err := store.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = store.CloseIfSupported(backend) }
	return registry.New(backend), closeFn, nil
}
