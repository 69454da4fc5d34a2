package decode

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
)

// Ensure YAML implements the interface.
var _ driven.DocumentDecoder = YAML{}

// YAML decodes YAML documents via yaml.v3. It decodes through
// yaml.Node rather than map[string]any so that mapping fields keep
// their document order in the resulting tree.
type YAML struct{}

// Extensions implements DocumentDecoder.
func (YAML) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Decode implements DocumentDecoder.
func (YAML) Decode(data []byte) (domain.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// Empty document.
		return domain.Object{}, nil
	}
	return fromNode(root.Content[0])
}

// fromNode converts one yaml.Node into a domain Value.
func fromNode(n *yaml.Node) (domain.Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		// Content alternates key, value.
		fields := make([]domain.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, domain.Field{Name: n.Content[i].Value, Child: child})
		}
		return domain.Object{Fields: fields}, nil

	case yaml.SequenceNode:
		items := make([]domain.Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return domain.Sequence{Items: items}, nil

	case yaml.ScalarNode:
		return scalarFromNode(n)

	case yaml.AliasNode:
		return fromNode(n.Alias)

	default:
		return nil, fmt.Errorf("unexpected yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

// scalarFromNode maps a YAML scalar to its Go value by resolved tag.
func scalarFromNode(n *yaml.Node) (domain.Value, error) {
	switch n.Tag {
	case "!!null":
		return domain.Scalar{Val: nil}, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			var decoded bool
			if err := n.Decode(&decoded); err != nil {
				return nil, fmt.Errorf("parsing yaml bool %q: %w", n.Value, err)
			}
			return domain.Scalar{Val: decoded}, nil
		}
		return domain.Scalar{Val: b}, nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing yaml int %q: %w", n.Value, err)
		}
		return domain.Scalar{Val: i}, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing yaml float %q: %w", n.Value, err)
		}
		return domain.Scalar{Val: f}, nil
	default:
		return domain.Scalar{Val: n.Value}, nil
	}
}
