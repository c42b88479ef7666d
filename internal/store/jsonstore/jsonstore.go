package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/idilsaglam/stockpile/internal/model"
)

// JSON-backed snapshot. Single file, human-readable, rewritten whole on
// every Save. No locking across processes: two writers on one file lose
// updates.

// DefaultFileName is the snapshot name used when none is configured.
const DefaultFileName = "inventory.json"

// ErrCorruptSnapshot is returned when a snapshot exists but does not decode
// into an inventory.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

type record struct {
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// Resolve turns p into an absolute path, relative to the working directory.
// An empty p means DefaultFileName.
func Resolve(p string) (string, error) {
	if p == "" {
		p = DefaultFileName
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, p), nil
}

// Load reads the snapshot at p. A missing file yields an empty inventory.
func Load(p string) (model.Inventory, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Inventory{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Decode parses snapshot bytes. Anything other than an object of
// {price, quantity} records with a non-negative integer quantity is corrupt.
func Decode(b []byte) (model.Inventory, error) {
	var raw map[string]*record
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not an object", ErrCorruptSnapshot)
	}
	inv := make(model.Inventory, len(raw))
	for name, r := range raw {
		switch {
		case r == nil:
			return nil, fmt.Errorf("%w: item %q is null", ErrCorruptSnapshot, name)
		case r.Price == nil:
			return nil, fmt.Errorf("%w: item %q has no price", ErrCorruptSnapshot, name)
		case r.Quantity == nil:
			return nil, fmt.Errorf("%w: item %q has no quantity", ErrCorruptSnapshot, name)
		case *r.Quantity < 0:
			return nil, fmt.Errorf("%w: item %q has negative quantity %d", ErrCorruptSnapshot, name, *r.Quantity)
		}
		inv[name] = model.Item{Name: name, Price: *r.Price, Quantity: *r.Quantity}
	}
	return inv, nil
}

// Encode renders inv as snapshot bytes. Keys come out sorted.
func Encode(inv model.Inventory) ([]byte, error) {
	if inv == nil {
		inv = model.Inventory{}
	}
	b, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}

// Save replaces the snapshot at p with inv. The bytes go to a temp file in
// the same directory which is then renamed over p, so readers see either the
// old or the new snapshot.
func Save(p string, inv model.Inventory) error {
	b, err := Encode(inv)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
