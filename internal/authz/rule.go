package authz

// Action is a verb a principal may perform on a subject. ActionManage is
// the wildcard that matches every other action.
type Action string

// Actions known to the permission rules.
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

// Rule is one entry of an ability: a grant or denial of a set of actions on
// a subject type, optionally restricted by a condition over the subject's
// values, and optionally scoped to specific fields.
//
// A field-scoped rule (len(Fields) > 0) never grants or denies the action
// as a whole; it only applies to checks naming one of its fields.
type Rule struct {
	Actions   []Action
	Subject   SubjectType
	Condition *Condition
	Fields    []string
	Inverted  bool
}

// allow builds a grant rule.
func allow(subject SubjectType, actions ...Action) Rule {
	return Rule{Actions: actions, Subject: subject}
}

// allowWhere builds a grant rule with a condition.
func allowWhere(subject SubjectType, cond *Condition, actions ...Action) Rule {
	return Rule{Actions: actions, Subject: subject, Condition: cond}
}

// denyWhere builds a denial rule with a condition.
func denyWhere(subject SubjectType, cond *Condition, actions ...Action) Rule {
	return Rule{Actions: actions, Subject: subject, Condition: cond, Inverted: true}
}

// denyFields builds a denial rule scoped to specific fields.
func denyFields(subject SubjectType, fields []string, actions ...Action) Rule {
	return Rule{Actions: actions, Subject: subject, Fields: fields, Inverted: true}
}

// matchesAction reports whether the rule covers the requested action,
// either exactly or through the manage wildcard.
func (r *Rule) matchesAction(action Action) bool {
	for _, a := range r.Actions {
		if a == action || a == ActionManage {
			return true
		}
	}
	return false
}

// matchesSubject reports whether the rule covers the requested subject
// type, either exactly or through the all wildcard.
func (r *Rule) matchesSubject(t SubjectType) bool {
	return r.Subject == t || r.Subject == SubjectAll
}

// namesField reports whether the rule's field scope includes the field.
func (r *Rule) namesField(field string) bool {
	for _, f := range r.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// matches reports whether the rule's action, subject, and condition all
// qualify for the given check.
func (r *Rule) matches(action Action, subject Subject) bool {
	if !r.matchesAction(action) || !r.matchesSubject(subject.Type) {
		return false
	}
	if r.Condition != nil && !r.Condition.Matches(subject.Record) {
		return false
	}
	return true
}
