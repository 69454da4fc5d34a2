package decode

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
)

// Ensure TOML implements the interface.
var _ driven.DocumentDecoder = TOML{}

// TOML decodes TOML documents via go-toml. Unmarshal produces plain
// maps, which carry no ordering, so a second pass over the document's
// AST records the order each key first appears in and the decoded tree
// is rearranged to match.
type TOML struct{}

// Extensions implements DocumentDecoder.
func (TOML) Extensions() []string {
	return []string{".toml"}
}

// Decode implements DocumentDecoder.
func (TOML) Decode(data []byte) (domain.Value, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing toml: %w", err)
	}

	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("parsing toml: %w", err)
	}
	return tomlReorder(domain.FromAny(doc), "", order), nil
}

// tomlKeyOrder walks the document's expressions and records, for each
// container path (dotted names, array indices elided), its child key
// names in order of first appearance.
func tomlKeyOrder(data []byte) (map[string][]string, error) {
	order := map[string][]string{}
	seen := map[string]map[string]bool{}
	note := func(parent, name string) {
		if seen[parent] == nil {
			seen[parent] = map[string]bool{}
		}
		if !seen[parent][name] {
			seen[parent][name] = true
			order[parent] = append(order[parent], name)
		}
	}

	var p unstable.Parser
	p.Reset(data)
	table := ""
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = notePath(note, "", tomlKeyParts(e))
		case unstable.KeyValue:
			path := notePath(note, table, tomlKeyParts(e))
			noteTomlValue(note, path, e.Value())
		}
	}
	return order, p.Error()
}

// tomlKeyParts collects the segments of a node's (possibly dotted) key.
func tomlKeyParts(e *unstable.Node) []string {
	var parts []string
	it := e.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// notePath records each segment of a dotted key under its parent path
// and returns the full path.
func notePath(note func(parent, name string), parent string, parts []string) string {
	path := parent
	for _, name := range parts {
		note(path, name)
		path = tomlChildPath(path, name)
	}
	return path
}

// noteTomlValue descends into inline tables and arrays, whose entries
// also carry document order.
func noteTomlValue(note func(parent, name string), path string, v *unstable.Node) {
	switch v.Kind {
	case unstable.InlineTable:
		it := v.Children()
		for it.Next() {
			kv := it.Node()
			sub := notePath(note, path, tomlKeyParts(kv))
			noteTomlValue(note, sub, kv.Value())
		}
	case unstable.Array:
		it := v.Children()
		for it.Next() {
			noteTomlValue(note, path, it.Node())
		}
	}
}

func tomlChildPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// tomlReorder rearranges each Object's fields into the recorded
// document order. Array-of-tables elements share their key's path, so
// their field orders merge by first appearance. Names the order pass
// did not see keep their sorted position after the ordered ones.
func tomlReorder(v domain.Value, path string, order map[string][]string) domain.Value {
	switch t := v.(type) {
	case domain.Object:
		fields := make([]domain.Field, 0, len(t.Fields))
		used := make(map[string]bool, len(t.Fields))
		for _, name := range order[path] {
			child, ok := t.Lookup(name)
			if !ok {
				continue
			}
			used[name] = true
			fields = append(fields, domain.Field{
				Name:  name,
				Child: tomlReorder(child, tomlChildPath(path, name), order),
			})
		}
		for _, f := range t.Fields {
			if used[f.Name] {
				continue
			}
			fields = append(fields, domain.Field{
				Name:  f.Name,
				Child: tomlReorder(f.Child, tomlChildPath(path, f.Name), order),
			})
		}
		return domain.Object{Fields: fields}

	case domain.Sequence:
		items := make([]domain.Value, len(t.Items))
		for i, item := range t.Items {
			items[i] = tomlReorder(item, path, order)
		}
		return domain.Sequence{Items: items}

	default:
		return v
	}
}
