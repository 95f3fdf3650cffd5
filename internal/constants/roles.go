package constants

// Event roles, lowest to highest.
const (
	Guest   = "guest"
	Vendor  = "vendor"
	Planner = "planner"
	Owner   = "owner"
)

// roleHierarchy orders roles by rank; index is the rank used for the
// "can invite" comparison. Built once, never mutated.
var roleHierarchy = []string{Guest, Vendor, Planner, Owner}

// roleLabels are the default display labels per role.
var roleLabels = map[string]string{
	Guest:   "Guest",
	Vendor:  "Vendor",
	Planner: "Planner",
	Owner:   "Owner",
}

// Rank returns the position of role in the hierarchy; ok is false for
// unrecognized roles.
func Rank(role string) (int, bool) {
	for i, r := range roleHierarchy {
		if r == role {
			return i, true
		}
	}
	return 0, false
}

// IsValidRole returns true if role is one of the allowed enum values.
func IsValidRole(role string) bool {
	_, ok := Rank(role)
	return ok
}

// CanInviteTo reports whether a member with sourceRole may invite at
// targetRole. Unknown roles deny by default.
func CanInviteTo(sourceRole, targetRole string) bool {
	src, ok := Rank(sourceRole)
	if !ok {
		return false
	}
	tgt, ok := Rank(targetRole)
	if !ok {
		return false
	}
	return src >= tgt
}

// AvailableRolesFor returns the roles a member with role may invite at,
// lowest rank first through the member's own role inclusive. Empty for
// unrecognized roles.
func AvailableRolesFor(role string) []string {
	rank, ok := Rank(role)
	if !ok {
		return []string{}
	}
	out := make([]string, rank+1)
	copy(out, roleHierarchy[:rank+1])
	return out
}

// DefaultRoleLabel returns the display label for role ("Guest" for guest).
// Falls back to the raw role string for unknown values.
func DefaultRoleLabel(role string) string {
	if l, ok := roleLabels[role]; ok {
		return l
	}
	return role
}
