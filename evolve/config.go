package evolve

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for an evolution run.
type Config struct {
	Evolution EvolutionConfig
	Mutation  MutationConfig
	Network   NetworkConfig
}

// EvolutionConfig holds parameters for the generational loop.
type EvolutionConfig struct {
	PopSize              int     `ini:"pop_size"`
	MaxGenerations       int     `ini:"max_generations"`
	FitnessCriterion     string  `ini:"fitness_criterion"` // e.g., "max", "min", "mean"
	FitnessThreshold     float64 `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`
	MaxStagnation        int     `ini:"max_stagnation"` // 0 disables the stagnation stop
	Seed                 int64   `ini:"seed"`
}

// MutationConfig holds the Gaussian mutation parameters.
type MutationConfig struct {
	Chance      float64 `ini:"chance"`
	Coefficient float64 `ini:"coefficient"`
}

// NetworkConfig holds the feed-forward network topology.
type NetworkConfig struct {
	LayerSizes []int `ini:"layer_sizes" delim:" "` // Space-separated neuron counts, input layer first
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}

	// Booleans with inline comments can survive MapTo oddly; reload explicitly.
	evoSection := cfg.Section("Evolution")
	if key, err := evoSection.GetKey("no_fitness_termination"); err == nil {
		config.Evolution.NoFitnessTermination, _ = key.Bool()
	}

	config.Evolution.FitnessCriterion = cleanIniString(config.Evolution.FitnessCriterion)

	// Defaults
	if config.Evolution.FitnessCriterion == "" {
		config.Evolution.FitnessCriterion = "max"
	}
	if config.Evolution.MaxGenerations == 0 {
		config.Evolution.MaxGenerations = 100
	}

	// --- Validation ---

	if config.Evolution.PopSize <= 0 {
		return nil, fmt.Errorf("config error: pop_size must be positive")
	}
	if config.Evolution.MaxGenerations <= 0 {
		return nil, fmt.Errorf("config error: max_generations must be positive")
	}
	if config.Evolution.MaxStagnation < 0 {
		return nil, fmt.Errorf("config error: max_stagnation cannot be negative")
	}
	if config.Mutation.Chance < 0 || config.Mutation.Chance > 1 {
		return nil, fmt.Errorf("config error: mutation chance must be between 0 and 1")
	}
	if len(config.Network.LayerSizes) < 2 {
		return nil, fmt.Errorf("config error: layer_sizes must list at least two layers")
	}
	for i, size := range config.Network.LayerSizes {
		if size <= 0 {
			return nil, fmt.Errorf("config error: layer_sizes entry %d must be positive, got %d", i, size)
		}
	}
	if _, ok := StatFunctions[strings.ToLower(config.Evolution.FitnessCriterion)]; !ok {
		return nil, fmt.Errorf("config error: invalid fitness_criterion '%s'", config.Evolution.FitnessCriterion)
	}

	return config, nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
