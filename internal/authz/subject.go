package authz

// SubjectType identifies the kind of resource an action targets.
type SubjectType string

// Subject types known to the permission rules. SubjectAll is the wildcard
// matched only by manage-all grants.
const (
	SubjectUser     SubjectType = "User"
	SubjectArticle  SubjectType = "Article"
	SubjectCategory SubjectType = "Category"
	SubjectAll      SubjectType = "all"
)

// Subject is the target of a permission check: either a bare type (for
// checks like "may this principal create Articles at all") or a type plus a
// materialized record whose values condition rules are matched against.
type Subject struct {
	Type   SubjectType
	Record map[string]any
}

// TypeOnly builds a Subject carrying just a type tag.
func TypeOnly(t SubjectType) Subject {
	return Subject{Type: t}
}

// Record builds a Subject carrying a type tag and a key/value view of the
// concrete record. Keys use the JSON field names of the API surface
// ("id", "roles", "authorId", ...).
func Record(t SubjectType, record map[string]any) Subject {
	return Subject{Type: t, Record: record}
}
