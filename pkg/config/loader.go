package config

import (
	"fmt"
	"os"
)

// LoadStudy loads and parses a study file
func LoadStudy(path string) (*Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read study file %s: %w", path, err)
	}
	study, err := ParseStudyYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse study file %s: %w", path, err)
	}
	return study, nil
}

// validateStudy performs validation on the study definition
func validateStudy(s *Study) error {
	// Validate log level
	validLogLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[s.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", s.LogLevel)
	}

	if s.Threshold < 0 {
		return fmt.Errorf("threshold cannot be negative, got %f", s.Threshold)
	}
	if s.MaxSweeps < 0 {
		return fmt.Errorf("max_sweeps cannot be negative, got %d", s.MaxSweeps)
	}

	// Validate solver
	validSolvers := map[string]bool{
		"":        true,
		"bounded": true,
		"anneal":  true,
	}
	if !validSolvers[s.Solver] {
		return fmt.Errorf("invalid solver: %s (must be bounded or anneal)", s.Solver)
	}

	if err := validateObjective(&s.Objective, len(s.Params)); err != nil {
		return fmt.Errorf("objective validation failed: %w", err)
	}

	// Validate params
	if len(s.Params) == 0 {
		return fmt.Errorf("at least one param must be defined")
	}
	paramNames := make(map[string]bool)
	for _, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("param name cannot be empty")
		}
		if paramNames[p.Name] {
			return fmt.Errorf("duplicate param name: %s", p.Name)
		}
		paramNames[p.Name] = true

		if p.Bounds.Low > p.Bounds.High {
			return fmt.Errorf("param %s: bounds low %f exceeds high %f", p.Name, p.Bounds.Low, p.Bounds.High)
		}
		if p.Ratio && p.Integer {
			return fmt.Errorf("param %s: ratio and integer are mutually exclusive", p.Name)
		}
	}

	return nil
}

// validateObjective validates the objective configuration
func validateObjective(o *Objective, paramCount int) error {
	switch o.Type {
	case "quadratic":
		if len(o.Targets) > 0 && len(o.Targets) != paramCount {
			return fmt.Errorf("quadratic targets length %d does not match %d params", len(o.Targets), paramCount)
		}
	case "sphere", "noise":
		// No extra configuration.
	case "backtest":
		if paramCount != 5 {
			return fmt.Errorf("backtest objective requires exactly 5 params (lookback, entry_distance, stop_loss, take_profit, risk_pct), got %d", paramCount)
		}
		if o.Series == nil {
			return fmt.Errorf("backtest objective requires a series")
		}
		if o.Series.Candles <= 0 {
			return fmt.Errorf("series candles must be positive, got %d", o.Series.Candles)
		}
		if o.Series.StartPrice <= 0 {
			return fmt.Errorf("series start_price must be positive, got %f", o.Series.StartPrice)
		}
		if o.Series.Volatility <= 0 {
			return fmt.Errorf("series volatility must be positive, got %f", o.Series.Volatility)
		}
	case "":
		return fmt.Errorf("objective type cannot be empty")
	default:
		return fmt.Errorf("invalid objective type: %s (must be quadratic, sphere, noise, or backtest)", o.Type)
	}

	return nil
}
