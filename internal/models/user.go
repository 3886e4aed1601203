package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role the API distinguishes.
const RoleAdmin = "admin"

// User is keyed by email. Profile fields sent by the client on login
// (name, photo, ...) live in Extra.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email string                 `bson:"email" json:"email"`
	Role  string                 `bson:"role,omitempty" json:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

type userFields User

func (u User) MarshalJSON() ([]byte, error) {
	return joinDocument(userFields(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	extra, err := splitDocument(data, (*userFields)(u), "email", "role")
	if err != nil {
		return err
	}
	u.Extra = extra
	return nil
}

// IsAdmin reports whether u carries the admin role. A nil user is never admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
