package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/statable/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# statable loader configuration\n# See 'statable init --help' for the available keys.\n\n"

// Write saves cfg as YAML at path. An existing file is only replaced with force.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config already exists: "+path,
				"Use --force to overwrite it")
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file "+path,
			"Check file permissions")
	}
	return nil
}

// SetDemoInitial records state as demo.initial in the config file at path.
// It edits the YAML node tree so comments and key order survive.
func SetDemoInitial(path, state string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	var doc *yaml.Node
	switch {
	case root.Kind == 0:
		// Empty file: start a fresh document.
		doc = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}}
	case root.Kind == yaml.DocumentNode && len(root.Content) > 0 && root.Content[0].Kind == yaml.MappingNode:
		doc = root.Content[0]
	default:
		return fmt.Errorf("expected mapping at document root")
	}

	demo := findMapValue(doc, "demo")
	if demo == nil {
		demo = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "demo"},
			demo)
	} else if demo.Kind != yaml.MappingNode {
		return fmt.Errorf("'demo' must be a mapping")
	}

	if initial := findMapValue(demo, "initial"); initial != nil {
		initial.Kind = yaml.ScalarNode
		initial.Tag = "!!str"
		initial.Value = state
	} else {
		demo.Content = append(demo.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "initial"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: state})
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("failed to encode config file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat config file: %w", err)
	}
	return os.WriteFile(path, out, info.Mode().Perm())
}

// findMapValue returns the value node for key in a mapping node, or nil.
func findMapValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
