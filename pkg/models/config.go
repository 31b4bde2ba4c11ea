// Package models defines the plain data structures shared across the
// distill pipeline: corpus records, extracted pairs, training entries,
// and configuration.
package models

// Roots holds the external filesystem roots the pipeline reads and writes.
type Roots struct {
	// Corpus is the directory holding the three required JSON
	// collections (cookbooks, security rules, error fixes) and the
	// resource markdown files.
	Corpus string `yaml:"corpus" mapstructure:"corpus"`
	// Gerbil is the root of a Gerbil checkout (doc/, src/).
	Gerbil string `yaml:"gerbil" mapstructure:"gerbil"`
	// Gambit is the root of a Gambit checkout (examples/).
	Gambit string `yaml:"gambit" mapstructure:"gambit"`
	// Output is where the training data files are written.
	Output string `yaml:"output" mapstructure:"output"`
}

// Limits holds the size thresholds applied by the adapters.
type Limits struct {
	// DocMax is the whole-document cutoff for markdown docs, in bytes.
	DocMax int `yaml:"doc_max" mapstructure:"doc_max"`
	// SectionMin is the minimum section body length, in bytes.
	SectionMin int `yaml:"section_min" mapstructure:"section_min"`
	// APIMin is the minimum API doc body length, in bytes.
	APIMin int `yaml:"api_min" mapstructure:"api_min"`
	// TutorialMax is the whole-document cutoff for tutorial docs.
	TutorialMax int `yaml:"tutorial_max" mapstructure:"tutorial_max"`
	// SourceMin is the minimum source file length.
	SourceMin int `yaml:"source_min" mapstructure:"source_min"`
	// TestMin and TestMax bound the test-file size window.
	TestMin int `yaml:"test_min" mapstructure:"test_min"`
	TestMax int `yaml:"test_max" mapstructure:"test_max"`
	// StdMax is the std-library file size above which truncation kicks
	// in; StdLines is the number of lines kept when it does.
	StdMax   int `yaml:"std_max" mapstructure:"std_max"`
	StdLines int `yaml:"std_lines" mapstructure:"std_lines"`
}

// PipelineConfig is the full configuration read from .distillconfig.
type PipelineConfig struct {
	Roots   Roots  `yaml:"roots" mapstructure:"roots"`
	Persona string `yaml:"persona" mapstructure:"persona"`
	Limits  Limits `yaml:"limits" mapstructure:"limits"`
}

// Catalog holds the human-readable description lookups used by the
// source-file adapters. It is static domain data, overridable from a
// descriptions.yaml file next to the config.
type Catalog struct {
	// StdModules maps std-library source paths (relative to the Gerbil
	// root) to descriptions.
	StdModules map[string]string `yaml:"std_modules"`
	// TutorialDirs maps tutorial source directory names to descriptions.
	TutorialDirs map[string]string `yaml:"tutorial_dirs"`
	// GambitExamples maps Gambit example directory names to descriptions.
	GambitExamples map[string]string `yaml:"gambit_examples"`
}
