package practice

import "practicedesk/internal/jsonutil"

// Role is the viewer's role on a specific practice. The API sends null when
// the viewer has no role yet; that decodes to RoleNone.
type Role int

const (
	RoleNone Role = iota
	RoleSeller
	RoleBuyer
	RoleModerator
	RoleObserver
)

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleSeller:
		return "SELLER"
	case RoleBuyer:
		return "BUYER"
	case RoleModerator:
		return "MODERATOR"
	case RoleObserver:
		return "OBSERVER"
	default:
		return ""
	}
}

// parseRole converts a wire string to a Role value.
func parseRole(s string) (Role, error) {
	switch s {
	case "SELLER":
		return RoleSeller, nil
	case "BUYER":
		return RoleBuyer, nil
	case "MODERATOR":
		return RoleModerator, nil
	case "OBSERVER":
		return RoleObserver, nil
	case "":
		return RoleNone, nil
	default:
		return 0, jsonutil.ParseEnumError("Role", s)
	}
}

// MarshalJSON implements json.Marshaler. RoleNone marshals as null.
func (r Role) MarshalJSON() ([]byte, error) {
	if r == RoleNone {
		return []byte("null"), nil
	}
	return jsonutil.MarshalEnumJSON(r)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Role) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = RoleNone
		return nil
	}
	parsed, err := jsonutil.UnmarshalEnumJSON(data, parseRole)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
