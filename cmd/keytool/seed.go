package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/primitives/store"
	"github.com/edup2p/primitives/types/key"
	"github.com/naoina/toml"
	"golang.org/x/exp/maps"
)

// SeedFile is the TOML layout of a -seed file:
//
//	[[Keys]]
//	Key = "key:0101..."
//	Type = "relayer"
//	Label = "relayer 1"
type SeedFile struct {
	Keys []SeedKey `toml:"Keys"`
}

type SeedKey struct {
	Key   string `toml:"Key"`
	Type  string `toml:"Type"`
	Label string `toml:"Label"`
}

func readSeed(path string) (*SeedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sf := new(SeedFile)
	if err := toml.NewDecoder(file).Decode(sf); err != nil {
		return nil, err
	}
	return sf, nil
}

// seedEntries resolves a seed file into entries. Later duplicates of a key
// win over earlier ones.
func seedEntries(sf *SeedFile) (map[key.Key]store.Entry, error) {
	entries := make(map[key.Key]store.Entry, len(sf.Keys))

	for i, sk := range sf.Keys {
		k, err := parseKeyArg(sk.Key)
		if err != nil {
			return nil, fmt.Errorf("seed key %d: %w", i, err)
		}

		var e store.Entry
		if sk.Type != "" {
			if e.Type, err = key.ParseKeyType(sk.Type); err != nil {
				return nil, fmt.Errorf("seed key %d: %w", i, err)
			}
		}
		if sk.Label != "" {
			e.Label = gonull.NewNullable(sk.Label)
		}

		if _, dup := entries[k]; dup {
			slog.Warn("duplicate key in seed file", "index", i, "key", k.Debug())
		}
		entries[k] = e
	}

	return entries, nil
}

// loadSeed registers every key of the seed file at path, in key order.
func loadSeed(path string, reg *store.Store) (int, error) {
	sf, err := readSeed(path)
	if err != nil {
		return 0, err
	}

	entries, err := seedEntries(sf)
	if err != nil {
		return 0, err
	}

	keys := maps.Keys(entries)
	slices.SortFunc(keys, key.Compare)

	for _, k := range keys {
		if err := reg.Put(k, entries[k]); err != nil {
			return 0, err
		}
	}

	return len(keys), nil
}
