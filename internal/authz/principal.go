package authz

// Application roles. Stored on the user record and evaluated on every
// request; roles are never read back from a credential.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Principal is the minimal identity view the rule builder needs: who the
// actor is and which roles it holds. A nil *Principal represents an
// anonymous visitor.
type Principal struct {
	ID    int64
	Roles []string
}

// HasRole reports whether the principal holds the given role.
// A nil principal holds no roles.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
