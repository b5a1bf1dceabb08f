package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"home-catering/models"

	"go.uber.org/zap"
)

// CatalogKey is the single key the whole menu is stored under.
const CatalogKey = "catering_menu"

var errEmptyCatalog = errors.New("stored catalog is null")

func EncodeCatalog(items []models.MenuItem) (string, error) {
	if items == nil {
		items = []models.MenuItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}
	return string(b), nil
}

func DecodeCatalog(s string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if items == nil {
		return nil, errEmptyCatalog
	}
	return items, nil
}

// LoadCatalog reads the stored menu. A missing, unreadable or malformed value
// falls back to the seed menu; those cases are logged, never returned.
func LoadCatalog(ctx context.Context, kv KVStore, log *zap.Logger) (*Catalog, error) {
	raw, found, err := kv.Get(ctx, CatalogKey)
	switch {
	case err != nil:
		log.Warn("read stored catalog, using seed menu", zap.Error(err))
	case !found:
		log.Info("no stored catalog, using seed menu")
	default:
		items, err := DecodeCatalog(raw)
		if err == nil {
			log.Debug("loaded stored catalog", zap.Int("items", len(items)))
			return NewCatalog(items), nil
		}
		log.Warn("stored catalog is malformed, using seed menu", zap.Error(err))
	}
	seed, err := SeedMenu()
	if err != nil {
		return nil, err
	}
	return NewCatalog(seed), nil
}

// SaveCatalog writes the full menu back.
func SaveCatalog(ctx context.Context, kv KVStore, c *Catalog) error {
	s, err := EncodeCatalog(c.Items())
	if err != nil {
		return err
	}
	if err := kv.Put(ctx, CatalogKey, s); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
