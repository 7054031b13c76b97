package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveValue sets a dotted key such as "ui.palette" in the YAML file at path,
// creating the file and intermediate maps as needed. Other keys and their
// order are preserved.
func SaveValue(path, key string, value any) error {
	if key == "" {
		return fmt.Errorf("config key cannot be empty")
	}

	var root yaml.Node
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		// A file with nothing but comments parses to no document at all.
		head := root.HeadComment
		if head == "" {
			head = leadingComments(data)
		}
		root = yaml.Node{
			Kind:        yaml.DocumentNode,
			HeadComment: head,
			Content:     []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("config %s: top level is not a mapping", path)
	}

	var valueNode yaml.Node
	if err := valueNode.Encode(value); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	parts := strings.Split(key, ".")
	node := doc
	for i, part := range parts {
		child := lookup(node, part)
		if i == len(parts)-1 {
			if child == nil {
				node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: part}, &valueNode)
			} else {
				*child = valueNode
			}
			break
		}
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: part}, child)
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("config key %s: %s is not a mapping", key, part)
		}
		node = child
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o600)
}

// leadingComments returns the comment lines of data, which must hold no YAML
// content.
func leadingComments(data []byte) string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
