package identity

// Kind distinguishes the two static roles the service knows about.
type Kind string

const (
	KindAdmin Kind = "admin"
	KindTeam  Kind = "team"
)

// Identity is the authenticated caller attached to a request before any
// use case runs. Team fields are populated only for KindTeam.
type Identity struct {
	Kind     Kind
	TeamID   int64
	TeamName string
	Token    string
}

func Admin() Identity {
	return Identity{Kind: KindAdmin}
}

func (i Identity) IsAdmin() bool {
	return i.Kind == KindAdmin
}

// Resolve picks the effective identity for a request that may carry an admin
// session, a team token, both, or neither. Admin wins when both are present.
// The second return value reports whether any identity was resolved.
func Resolve(admin, team *Identity) (Identity, bool) {
	switch {
	case admin != nil:
		return *admin, true
	case team != nil:
		return *team, true
	default:
		return Identity{}, false
	}
}
