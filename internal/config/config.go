// Package config provides the generation profile for the username wordlist
// generator. A profile is a YAML file mirroring the CLI options; flag
// values override profile fields, and everything is validated before any
// generation work begins.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/zierax/usergen/internal/generate"
)

// Sentinel errors for profile validation
var (
	ErrVersionRequired = errors.New("version is required")
	ErrUnknownFormat   = errors.New("unknown format category")
	ErrUnknownCapsMode = errors.New("unknown caps mode")
)

// Profile is the top-level generation profile structure.
type Profile struct {
	Version  string       `yaml:"version"`
	Metadata Metadata     `yaml:"metadata"`
	Formats  []string     `yaml:"formats"`
	Suffixes SuffixConfig `yaml:"suffixes"`
	Leet     bool         `yaml:"leet"`
	Caps     string       `yaml:"caps"`
}

// Metadata describes the profile itself.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SuffixConfig holds the raw suffix specifications. Each value is either a
// single literal, an inclusive range "A-B", or a comma-separated list.
type SuffixConfig struct {
	Numbers string `yaml:"numbers"`
	Years   string `yaml:"years"`
	Words   string `yaml:"words"`
}

// LoadProfile loads and parses a generation profile from a YAML file.
func LoadProfile(filePath string) (*Profile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", filePath, err)
	}
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filePath, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile saves a generation profile to a YAML file.
func SaveProfile(profile *Profile, filePath string) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", filePath, err)
	}
	return nil
}

// DefaultProfile returns the default profile: every format category, no
// suffix expansion, no leet, no capitalization variants.
func DefaultProfile() *Profile {
	return &Profile{
		Version: "1.0",
		Formats: []string{string(generate.FormatAll)},
		Caps:    string(generate.CapsNone),
	}
}

// Validate validates the profile structure and every raw specification it
// carries, so malformed input is rejected before generation starts.
func (p *Profile) Validate() error {
	if p.Version == "" {
		return ErrVersionRequired
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return fmt.Errorf("invalid profile version %q: %w", p.Version, err)
	}
	for _, f := range p.Formats {
		if !generate.KnownFormat(generate.Format(f)) {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	if p.Caps != "" && !generate.KnownCapsMode(generate.CapsMode(p.Caps)) {
		return fmt.Errorf("%w: %q", ErrUnknownCapsMode, p.Caps)
	}
	if _, err := p.Options(); err != nil {
		return err
	}
	return nil
}

// Options assembles the generation options from the profile, expanding the
// raw suffix specifications. An empty caps field means CapsNone.
func (p *Profile) Options() (generate.Options, error) {
	var opts generate.Options

	for _, f := range p.Formats {
		opts.Formats = append(opts.Formats, generate.Format(f))
	}

	numbers, err := ParseIntSpec(p.Suffixes.Numbers)
	if err != nil {
		return generate.Options{}, fmt.Errorf("numbers: %w", err)
	}
	years, err := ParseIntSpec(p.Suffixes.Years)
	if err != nil {
		return generate.Options{}, fmt.Errorf("years: %w", err)
	}
	opts.Suffixes = generate.Suffixes{
		Numbers: numbers,
		Years:   years,
		Words:   ParseWordSpec(p.Suffixes.Words),
	}

	opts.Leet = p.Leet
	caps := p.Caps
	if caps == "" {
		caps = string(generate.CapsNone)
	}
	opts.Caps = generate.CapsMode(caps)

	return opts, nil
}
