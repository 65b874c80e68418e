package analyzers

import (
	"fmt"
	"strconv"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const (
	// PathSeparator joins field=value segments into a pattern path.
	PathSeparator = " > "
	// sampleLimit bounds the raw records retained per tree node.
	sampleLimit = 3
)

// Base carries the preprocessing context shared by the analyzers spawned
// from one Dataspot instance. The registry is passed explicitly; nothing is
// global.
type Base struct {
	Preprocessors map[string]models.Preprocessor
}

// AddPreprocessor registers a value transform for a field. Registering a
// second preprocessor for the same field replaces the first.
func (b *Base) AddPreprocessor(field string, fn models.Preprocessor) error {
	if field == "" {
		return &ConfigurationError{Msg: "preprocessor field name is empty"}
	}
	if fn == nil {
		return &ConfigurationError{Msg: fmt.Sprintf("preprocessor for field %q is nil", field)}
	}
	if b.Preprocessors == nil {
		b.Preprocessors = make(map[string]models.Preprocessor)
	}
	b.Preprocessors[field] = fn
	return nil
}

// ValidateRecords rejects malformed record collections. An empty collection
// is valid; a nil entry is not.
func (b *Base) ValidateRecords(records []models.Record) error {
	for i, r := range records {
		if r == nil {
			return &DataError{Msg: fmt.Sprintf("record %d is not a mapping", i)}
		}
	}
	return nil
}

// FilterByQuery returns the records matching every query condition. A nil or
// empty query matches everything; the input slice is returned as-is in that
// case.
func (b *Base) FilterByQuery(records []models.Record, query models.Query) []models.Record {
	if len(query) == 0 {
		return records
	}
	matched := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matchesQuery(r, query) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesQuery(r models.Record, query models.Query) bool {
	for field, cond := range query {
		got := Stringify(r[field])
		switch want := cond.(type) {
		case []any:
			if !containsValue(want, got) {
				return false
			}
		case []string:
			ok := false
			for _, w := range want {
				if w == got {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		default:
			if Stringify(cond) != got {
				return false
			}
		}
	}
	return true
}

func containsValue(want []any, got string) bool {
	for _, w := range want {
		if Stringify(w) == got {
			return true
		}
	}
	return false
}

// fieldValue resolves the grouping key for one (record, field) pair: the
// registered preprocessor runs first, then the result is stringified.
// Missing or nil values become the empty-string branch so their
// concentration stays visible at every depth.
func (b *Base) fieldValue(r models.Record, field string) string {
	v := r[field]
	if fn, ok := b.Preprocessors[field]; ok {
		v = fn(v)
	}
	return Stringify(v)
}

// Stringify renders a scalar value as a stable categorical key. Integral
// floats drop the decimal point so JSON-decoded numbers group with their
// integer counterparts; nil renders as "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// treeNode is one node of the concentration tree. Children are keyed by
// stringified value; order preserves first-encounter sequence so traversal
// is deterministic.
type treeNode struct {
	id       int
	label    string // "field=value"; empty for the root
	count    int
	children map[string]*treeNode
	order    []string
	samples  []models.Record
}

// BuildTree groups records by successive field values. Node ids come from a
// single counter scoped to the call, assigned in first-encounter order; the
// root is id 0 and represents all records.
func (b *Base) BuildTree(records []models.Record, fields []string) *treeNode {
	root := &treeNode{children: make(map[string]*treeNode)}
	nextID := 0
	for _, rec := range records {
		root.count++
		node := root
		for _, field := range fields {
			key := b.fieldValue(rec, field)
			child, ok := node.children[key]
			if !ok {
				nextID++
				child = &treeNode{
					id:       nextID,
					label:    field + "=" + key,
					children: make(map[string]*treeNode),
				}
				node.children[key] = child
				node.order = append(node.order, key)
			}
			child.count++
			if len(child.samples) < sampleLimit {
				child.samples = append(child.samples, rec)
			}
			node = child
		}
	}
	return root
}
