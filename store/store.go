package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/llmconf/settings"
)

// StoreID identifies the settings snapshot in every backend.
const StoreID = "llmconf.SettingsState"

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no snapshot has been saved yet.
	ErrNotFound = errors.New("settings snapshot not found")

	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("unsupported settings file format")
)

// Store loads and saves settings snapshots.
type Store interface {
	// Load returns the saved snapshot, or ErrNotFound.
	Load(ctx context.Context) (*settings.State, error)

	// Save replaces the saved snapshot.
	Save(ctx context.Context, st *settings.State) error
}

// Restore loads the snapshot from st into svc. When nothing has been saved
// yet, svc is reloaded with the shipped defaults so the lifecycle hooks
// still seed costs and prompts.
func Restore(ctx context.Context, st Store, svc *settings.Service) error {
	snap, err := st.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		svc.LoadState(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore settings: %w", err)
	}
	svc.LoadState(snap)
	return nil
}

// Persist saves the current snapshot of svc.
func Persist(ctx context.Context, st Store, svc *settings.Service) error {
	if err := st.Save(ctx, svc.State()); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}
