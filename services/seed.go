package services

import (
	_ "embed"
	"fmt"

	"home-catering/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed_menu.yaml
var seedMenuYAML []byte

// SeedMenu returns the built-in menu.
func SeedMenu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := yaml.Unmarshal(seedMenuYAML, &items); err != nil {
		return nil, fmt.Errorf("parse seed menu: %w", err)
	}
	return items, nil
}
