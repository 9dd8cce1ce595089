// Package config handles discovery and parsing of the optional pylaunch
// configuration file.
//
// The config file is looked up in the working directory under four
// well-known names, in priority order:
//
//	pylaunch.jsonc, pylaunch.json, pylaunch.yaml, pylaunch.yml
//
// JSON files are parsed as JSONC (JSON with Comments) via
// github.com/tidwall/jsonc, so annotated configs work the same way
// devcontainer.json files do. YAML files are parsed with gopkg.in/yaml.v3.
//
// When no config file exists, the defaults reproduce the behavior of the
// original launch script: probe python3 (then python), install from
// requirements.txt, launch app.py.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"pylaunch/internal/model"
)

// Default values used when the config file is absent or a field is
// omitted. These mirror the hard-coded inputs of the original script.
const (
	// DefaultName is the application display name for the banner.
	DefaultName = "application"

	// DefaultMinVersion is the minimum interpreter version requirement.
	DefaultMinVersion = "3"

	// DefaultManifest is the dependency manifest path.
	DefaultManifest = "requirements.txt"

	// DefaultEntryPoint is the application entry-point path.
	DefaultEntryPoint = "app.py"
)

// DefaultCandidates are the interpreter binary names probed on the
// search path when the config does not pin an explicit interpreter.
// python3 is preferred; bare python is accepted as long as it satisfies
// the minimum version check.
var DefaultCandidates = []string{"python3", "python"}

// searchNames lists the config file names probed by Find, in priority
// order. The first existing file wins.
var searchNames = []string{
	"pylaunch.jsonc",
	"pylaunch.json",
	"pylaunch.yaml",
	"pylaunch.yml",
}

// File represents the raw on-disk configuration. All fields are optional;
// zero values fall back to the defaults above. The struct carries both
// json and yaml tags because both formats are supported.
type File struct {
	// Name is the application display name shown in the banner.
	Name string `json:"name" yaml:"name"`

	// Interpreter pins an explicit interpreter binary name or path.
	// When set, it replaces the default candidate list entirely.
	Interpreter string `json:"interpreter" yaml:"interpreter"`

	// MinVersion is the minimum acceptable interpreter version,
	// e.g. "3" or "3.8".
	MinVersion string `json:"minVersion" yaml:"minVersion"`

	// Requirements is the dependency manifest path handed to pip.
	Requirements string `json:"requirements" yaml:"requirements"`

	// EntryPoint is the application file handed to the interpreter.
	EntryPoint string `json:"entryPoint" yaml:"entryPoint"`

	// Args are extra arguments appended after the entry point.
	Args []string `json:"args" yaml:"args"`

	// Env holds environment variables applied to the launched
	// application (e.g., PORT, REDIS_URL).
	Env map[string]string `json:"env" yaml:"env"`

	// PipArgs are extra flags appended to the pip install invocation.
	PipArgs []string `json:"pipArgs" yaml:"pipArgs"`
}

// Find probes the well-known config file names in dir and returns the
// path of the first one that exists. The boolean result reports whether
// a file was found.
func Find(dir string) (string, bool) {
	for _, name := range searchNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads and parses the config file at path and resolves it into a
// LaunchPlan. The format is chosen by file extension: .yaml/.yml parse
// as YAML, everything else as JSONC.
func Load(path string) (*model.LaunchPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		// Strip JSONC comments and trailing commas before parsing with
		// the standard encoding/json. Unknown fields are silently
		// ignored, so configs can carry extra metadata.
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return f.Plan()
}

// LoadOrDefault resolves the effective LaunchPlan for dir: the parsed
// config file when one exists, otherwise the built-in defaults.
func LoadOrDefault(dir string) (*model.LaunchPlan, error) {
	if path, ok := Find(dir); ok {
		return Load(path)
	}
	return (&File{}).Plan()
}

// Plan resolves the raw file values into a validated LaunchPlan,
// applying defaults for every omitted field.
func (f *File) Plan() (*model.LaunchPlan, error) {
	name := f.Name
	if name == "" {
		name = DefaultName
	}

	minStr := f.MinVersion
	if minStr == "" {
		minStr = DefaultMinVersion
	}
	min, err := model.ParseInterpreterVersion(minStr)
	if err != nil {
		return nil, fmt.Errorf("invalid minVersion: %w", err)
	}

	// An explicit interpreter replaces the candidate list entirely —
	// if the user pins a binary, falling back to another one would
	// defeat the pin.
	candidates := DefaultCandidates
	if f.Interpreter != "" {
		candidates = []string{f.Interpreter}
	}

	manifest := f.Requirements
	if manifest == "" {
		manifest = DefaultManifest
	}

	entry := f.EntryPoint
	if entry == "" {
		entry = DefaultEntryPoint
	}

	plan := &model.LaunchPlan{
		Name:       name,
		Candidates: candidates,
		MinVersion: min,
		Manifest:   manifest,
		EntryPoint: entry,
		Args:       f.Args,
		Env:        f.Env,
		PipArgs:    f.PipArgs,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}
