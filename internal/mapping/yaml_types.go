package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML accepts either a single string or a list of strings.
// A blank single string decodes to an empty list.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if strings.TrimSpace(str) == "" {
			*s = StringOrArray{}
			return nil
		}

		*s = StringOrArray{str}

		return nil

	case yaml.SequenceNode:
		arr := make([]string, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected a field name, got %s", item.Line, kindName(item.Kind))
			}

			arr = append(arr, item.Value)
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise a list.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- PadDirection YAML methods ---

// UnmarshalYAML lower-cases the direction and maps "none" to PadNone.
// Unknown directions are kept so validation can report them.
func (p *PadDirection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: pad must be a string, got %s", node.Line, kindName(node.Kind))
	}

	v := strings.ToLower(strings.TrimSpace(node.Value))
	if v == "none" || node.Tag == "!!null" {
		v = ""
	}

	*p = PadDirection(v)

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
