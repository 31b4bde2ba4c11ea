package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager loads and validates the pipeline configuration
// from the .distillconfig file.
type ConfigurationManager interface {
	Load() (*models.PipelineConfig, error)
	Validate(cfg *models.PipelineConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .distillconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .distillconfig from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a PipelineConfig populated with the built-in
// roots, persona, and size limits.
func DefaultConfig() *models.PipelineConfig {
	home, _ := os.UserHomeDir()
	return &models.PipelineConfig{
		Roots: models.Roots{
			Corpus: filepath.Join(home, "mine", "gerbil-mcp"),
			Gerbil: filepath.Join(home, "mine", "gerbil"),
			Gambit: filepath.Join(home, "mine", "gambit"),
			Output: filepath.Join(home, "mine", "gerbil-lora"),
		},
		Persona: DefaultPersona,
		Limits: models.Limits{
			DocMax:      8000,
			SectionMin:  100,
			APIMin:      50,
			TutorialMax: 12000,
			SourceMin:   50,
			TestMin:     100,
			TestMax:     15000,
			StdMax:      20000,
			StdLines:    500,
		},
	}
}

// Load reads the .distillconfig file from the base path using Viper.
// If the file does not exist, the built-in defaults are returned.
func (cm *viperConfigManager) Load() (*models.PipelineConfig, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".distillconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("roots.corpus", cfg.Roots.Corpus)
	v.SetDefault("roots.gerbil", cfg.Roots.Gerbil)
	v.SetDefault("roots.gambit", cfg.Roots.Gambit)
	v.SetDefault("roots.output", cfg.Roots.Output)
	v.SetDefault("persona", cfg.Persona)
	v.SetDefault("limits.doc_max", cfg.Limits.DocMax)
	v.SetDefault("limits.section_min", cfg.Limits.SectionMin)
	v.SetDefault("limits.api_min", cfg.Limits.APIMin)
	v.SetDefault("limits.tutorial_max", cfg.Limits.TutorialMax)
	v.SetDefault("limits.source_min", cfg.Limits.SourceMin)
	v.SetDefault("limits.test_min", cfg.Limits.TestMin)
	v.SetDefault("limits.test_max", cfg.Limits.TestMax)
	v.SetDefault("limits.std_max", cfg.Limits.StdMax)
	v.SetDefault("limits.std_lines", cfg.Limits.StdLines)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .distillconfig: %w", err)
	}

	cfg.Roots.Corpus = expandHome(v.GetString("roots.corpus"))
	cfg.Roots.Gerbil = expandHome(v.GetString("roots.gerbil"))
	cfg.Roots.Gambit = expandHome(v.GetString("roots.gambit"))
	cfg.Roots.Output = expandHome(v.GetString("roots.output"))
	cfg.Persona = v.GetString("persona")
	cfg.Limits.DocMax = v.GetInt("limits.doc_max")
	cfg.Limits.SectionMin = v.GetInt("limits.section_min")
	cfg.Limits.APIMin = v.GetInt("limits.api_min")
	cfg.Limits.TutorialMax = v.GetInt("limits.tutorial_max")
	cfg.Limits.SourceMin = v.GetInt("limits.source_min")
	cfg.Limits.TestMin = v.GetInt("limits.test_min")
	cfg.Limits.TestMax = v.GetInt("limits.test_max")
	cfg.Limits.StdMax = v.GetInt("limits.std_max")
	cfg.Limits.StdLines = v.GetInt("limits.std_lines")

	return cfg, nil
}

// Validate checks the configuration for invalid values and returns a
// clear error message identifying every problem found.
func (cm *viperConfigManager) Validate(cfg *models.PipelineConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.Roots.Corpus == "" {
		errs = append(errs, "roots.corpus must not be empty")
	}
	if cfg.Roots.Output == "" {
		errs = append(errs, "roots.output must not be empty")
	}
	if cfg.Persona == "" {
		errs = append(errs, "persona must not be empty")
	}
	if cfg.Limits.DocMax <= 0 {
		errs = append(errs, fmt.Sprintf("limits.doc_max must be positive, got %d", cfg.Limits.DocMax))
	}
	if cfg.Limits.SectionMin < 0 {
		errs = append(errs, fmt.Sprintf("limits.section_min must be non-negative, got %d", cfg.Limits.SectionMin))
	}
	if cfg.Limits.TutorialMax < cfg.Limits.DocMax {
		errs = append(errs, fmt.Sprintf(
			"limits.tutorial_max %d must be at least limits.doc_max %d",
			cfg.Limits.TutorialMax, cfg.Limits.DocMax,
		))
	}
	if cfg.Limits.TestMin > cfg.Limits.TestMax {
		errs = append(errs, fmt.Sprintf(
			"limits.test_min %d exceeds limits.test_max %d",
			cfg.Limits.TestMin, cfg.Limits.TestMax,
		))
	}
	if cfg.Limits.StdLines <= 0 {
		errs = append(errs, fmt.Sprintf("limits.std_lines must be positive, got %d", cfg.Limits.StdLines))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
