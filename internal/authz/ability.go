// Package authz implements the rule-based access control core: a per-request
// ability (an ordered rule set derived from a principal's roles) and an
// evaluator for fine-grained (action, subject, field) permission checks.
//
// Abilities are pure values: building one performs no I/O, holds no shared
// state, and the result is immutable. Every request builds a fresh ability
// from a freshly loaded principal, so privilege changes take effect
// immediately and concurrent requests never share rule state.
package authz

import "fmt"

// Ability is the ordered rule set governing one principal's access for the
// current request. Later rules refine earlier ones: the evaluator applies
// the last matching rule, so broad grants are authored first and narrower
// denials appended after. Field-scoped denials sit outside that ordering:
// they veto the named fields no matter which grant matched.
type Ability struct {
	rules []Rule
}

// AbilityFor derives the ability for a principal, or for an anonymous
// visitor when p is nil.
//
// Admins collapse to a single manage-all rule and stop there: an admin is
// never subject to the field-immutability denials below. Everyone else gets
// the baseline, and holders of RoleUser the ownership-scoped grants on top.
func AbilityFor(p *Principal) Ability {
	if p.HasRole(RoleAdmin) {
		return Ability{rules: []Rule{allow(SubjectAll, ActionManage)}}
	}

	rules := []Rule{
		allow(SubjectUser, ActionCreate),
		// Self-elevation guard: anyone may sign up, nobody may sign up
		// as an admin.
		denyWhere(SubjectUser, FieldContains("roles", RoleAdmin), ActionCreate),
		allow(SubjectArticle, ActionRead),
		allow(SubjectCategory, ActionRead),
		// Article ownership is immutable for non-admins, owners included.
		denyFields(SubjectArticle, []string{"authorId"}, ActionUpdate),
	}

	if p.HasRole(RoleUser) {
		rules = append(rules,
			allow(SubjectArticle, ActionCreate),
			allowWhere(SubjectArticle, FieldEquals("authorId", p.ID), ActionUpdate, ActionDelete),
			allowWhere(SubjectUser, FieldEquals("id", p.ID), ActionRead, ActionUpdate),
			// Users manage their own profile but never their own roles.
			denyFields(SubjectUser, []string{"roles"}, ActionUpdate),
		)
	}

	return Ability{rules: rules}
}

// Rules returns a copy of the ordered rule set, mostly for diagnostics.
func (a Ability) Rules() []Rule {
	out := make([]Rule, len(a.rules))
	copy(out, a.rules)
	return out
}

// PermissionError is a structured denial carrying the check's context.
// Field is empty when the whole action was denied rather than a specific
// field of a write.
type PermissionError struct {
	Action  Action
	Subject SubjectType
	Field   string
}

// Error returns a human-readable reason suitable for a 403 response body.
func (e *PermissionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot %s field %q on %s", e.Action, e.Field, e.Subject)
	}
	return fmt.Sprintf("cannot %s %s", e.Action, e.Subject)
}

// Can evaluates whether the ability permits the action on the subject.
//
// The base decision uses last-rule-wins over the rules whose action,
// subject, and condition qualify; no qualifying rule means denial. When
// fields are given (the keys of a write payload), every field is
// additionally checked against the field-scoped denials: a denial naming
// any requested field fails the whole check and identifies that field.
// There is no partial application.
func (a Ability) Can(action Action, subject Subject, fields ...string) error {
	var matched *Rule
	for i := range a.rules {
		r := &a.rules[i]
		if len(r.Fields) > 0 {
			// Field-scoped rules never decide the action as a whole.
			continue
		}
		if r.matches(action, subject) {
			matched = r
		}
	}

	if matched == nil || matched.Inverted {
		return &PermissionError{Action: action, Subject: subject.Type}
	}

	for _, field := range fields {
		for i := range a.rules {
			r := &a.rules[i]
			if r.Inverted && r.namesField(field) && r.matches(action, subject) {
				return &PermissionError{Action: action, Subject: subject.Type, Field: field}
			}
		}
	}

	return nil
}
