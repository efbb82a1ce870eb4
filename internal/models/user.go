package models

import "time"

// Role is the access tier of a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
	RoleBanned Role = "banned"
)

// ValidRole reports whether r is one of the known role values.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser, RoleBanned:
		return true
	}
	return false
}

// UserModel is a registered account. Password stays bcrypt-hashed and is never
// serialized to JSON.
type UserModel struct {
	Base      `bson:",inline"`
	Email     string     `json:"email"      bson:"email"`
	Name      string     `json:"name"       bson:"name"`
	Password  string     `json:"-"          bson:"password"`
	Role      Role       `json:"role"       bson:"role"`
	Avatar    string     `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio       string     `json:"bio,omitempty"    bson:"bio,omitempty"`
	IsFrozen  bool       `json:"is_frozen"  bson:"isFrozen"`
	LastLogin *time.Time `json:"last_login,omitempty" bson:"lastLogin,omitempty"`
}

// CanModerate reports whether the account may act on other users' content.
func (u *UserModel) CanModerate() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

func (UserModel) Collection() string { return "users" }
