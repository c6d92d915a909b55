package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/policybot/internal/domain"
)

// PricingFile is the YAML layout of CHATBOT_PRICING_FILE:
//
//	models:
//	  gpt-4o-mini:
//	    input_per_1k: 0.00015
//	    output_per_1k: 0.0006
type PricingFile struct {
	Models map[string]domain.PricingConfig `yaml:"models"`
}

// LoadPricing reads per-model rate overrides from a YAML file.
func LoadPricing(path string) (map[string]domain.PricingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}

	var file PricingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}

	for model, pricing := range file.Models {
		if pricing.InputCostPer1K < 0 || pricing.OutputCostPer1K < 0 {
			return nil, fmt.Errorf("pricing for %s cannot be negative", model)
		}
	}

	return file.Models, nil
}

// ApplyPricing registers the overrides from path, if set, on table.
func ApplyPricing(ctx context.Context, path string, table *domain.PricingTable) error {
	if path == "" {
		return nil
	}

	models, err := LoadPricing(path)
	if err != nil {
		return err
	}

	for model, pricing := range models {
		if err := table.RegisterPricing(ctx, model, pricing); err != nil {
			return fmt.Errorf("register pricing for %s: %w", model, err)
		}
	}

	return nil
}
