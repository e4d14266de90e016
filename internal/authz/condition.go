package authz

// ConditionKind tags the supported predicate forms. The original rule set
// only needs equality and set-membership; the tag keeps the matcher open
// for new kinds without resorting to a document-query engine.
type ConditionKind int

const (
	// ConditionEquals matches when the record field equals the value.
	ConditionEquals ConditionKind = iota
	// ConditionContains matches when the record field is a collection
	// containing the value.
	ConditionContains
)

// Condition is a predicate over a single field of a subject record.
type Condition struct {
	Kind  ConditionKind
	Field string
	Value any
}

// FieldEquals builds an equality condition.
func FieldEquals(field string, value any) *Condition {
	return &Condition{Kind: ConditionEquals, Field: field, Value: value}
}

// FieldContains builds a set-membership condition.
func FieldContains(field string, value any) *Condition {
	return &Condition{Kind: ConditionContains, Field: field, Value: value}
}

// Matches evaluates the condition against a record view. A condition over a
// missing field never matches; a check without a record (type-only subject)
// carries no values, so conditioned rules do not qualify for it.
func (c *Condition) Matches(record map[string]any) bool {
	if record == nil {
		return false
	}
	value, ok := record[c.Field]
	if !ok {
		return false
	}

	switch c.Kind {
	case ConditionEquals:
		return equalValues(value, c.Value)
	case ConditionContains:
		return containsValue(value, c.Value)
	default:
		return false
	}
}

// equalValues compares scalar values, normalizing across the numeric types
// that show up in record views (int64 from domain structs, float64 from
// decoded JSON bodies).
func equalValues(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return a == b
}

// containsValue reports whether collection holds an element equal to value.
// Collections are either typed string slices (domain structs) or []any
// (decoded JSON bodies).
func containsValue(collection, value any) bool {
	switch items := collection.(type) {
	case []string:
		for _, item := range items {
			if equalValues(item, value) {
				return true
			}
		}
	case []any:
		for _, item := range items {
			if equalValues(item, value) {
				return true
			}
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
