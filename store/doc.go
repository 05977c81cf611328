// Package store persists settings snapshots.
//
// The settings core never touches storage; a host restores the Service on
// startup and persists it on save:
//
//	fs, err := store.NewFileStore(store.DefaultPath())
//	svc := settings.New()
//	if err := store.Restore(ctx, fs, svc); err != nil { ... }
//	...
//	if err := store.Persist(ctx, fs, svc); err != nil { ... }
//
// Two backends ship: FileStore (JSON, YAML or TOML by file extension) and
// SQLiteStore (a single-row table keyed by StoreID). Watch reloads a Service
// whenever its backing file changes on disk.
package store
