package collections

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Field is one named value of a [Record].
type Field struct {
	Key   string
	Value any
}

// Record is a raw, untyped row handed to the [Factory]. Unlike a Go map it
// keeps its fields in order, so "the first field" is well defined.
type Record []Field

// Row builds a positional record whose keys are "0", "1", ….
func Row(values ...any) Record {
	r := make(Record, len(values))
	for i, v := range values {
		r[i] = Field{Key: strconv.Itoa(i), Value: v}
	}
	return r
}

// First returns the value of the first field.
func (r Record) First() (any, bool) {
	if len(r) == 0 {
		return nil, false
	}
	return r[0].Value, true
}

// Map returns the record's fields as a map. Later duplicates win.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}

// ParseRecords decodes a YAML (or JSON) document holding a list of records.
// Each entry is either a mapping, whose key order is kept, or a sequence,
// which becomes a positional [Row].
//
//	records, err := collections.ParseRecords([]byte(`
//	- {id: 1, name: Alice}
//	- {id: 2, name: Bob}
//	`))
func ParseRecords(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: document must be a list, line %d", ErrInvalidRecord, root.Line)
	}
	records := make([]Record, 0, len(root.Content))
	for _, entry := range root.Content {
		r, err := recordFromNode(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func recordFromNode(node *yaml.Node) (Record, error) {
	switch node.Kind {
	case yaml.MappingNode:
		r := make(Record, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var v any
			if err := node.Content[i+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, node.Content[i+1].Line, err)
			}
			r = append(r, Field{Key: node.Content[i].Value, Value: v})
		}
		return r, nil
	case yaml.SequenceNode:
		values := make([]any, len(node.Content))
		for i, child := range node.Content {
			if err := child.Decode(&values[i]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, child.Line, err)
			}
		}
		return Row(values...), nil
	default:
		return nil, fmt.Errorf("%w: line %d: expected a mapping or a list", ErrInvalidRecord, node.Line)
	}
}
