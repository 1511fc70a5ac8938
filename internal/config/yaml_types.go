package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- NameList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for NameList.
// Accepts either a single string or an array of strings.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*n = NameList{str}
		} else {
			*n = NameList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*n = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for NameList.
// Outputs a single string if length is 1, otherwise an array.
func (n NameList) MarshalYAML() (any, error) {
	if len(n) == 1 {
		return n[0], nil
	}

	return []string(n), nil
}

// --- RecordConfig YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for RecordConfig.
// Accepts either a type name or a mapping.
func (r *RecordConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*r = RecordConfig{Type: name}

		return nil

	case yaml.MappingNode:
		// Decode through an alias type to avoid recursing into this method.
		type plain RecordConfig

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		if p.Type == "" {
			return errors.New("record entry must specify type")
		}

		*r = RecordConfig(p)

		return nil

	default:
		return fmt.Errorf("expected string or map, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for RecordConfig.
// Outputs the bare type name when nothing else is set.
func (r RecordConfig) MarshalYAML() (any, error) {
	if r.Builder == "" && r.Constructor == "" && r.Missing == "" {
		return r.Type, nil
	}

	type plain RecordConfig

	return plain(r), nil
}
