package model

import "time"

// Role is the authorization role carried by a user and by issued tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the credential document. Password always holds a bcrypt hash.
type User struct {
	ID        string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Username  string    `json:"username" bson:"username" gorm:"size:20;not null" validate:"required,min=3,max=20"`
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null" validate:"required"`
	Password  string    `json:"-" bson:"password" gorm:"size:255;not null" validate:"required"` // Never expose in JSON
	Role      Role      `json:"role" bson:"role" gorm:"size:16;default:'user'" validate:"oneof=user admin"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// ApplyDefaults fills the role when it was left empty.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// Validate checks the document against its schema.
func (u *User) Validate() error {
	return validateStruct(u)
}
