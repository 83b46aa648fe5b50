package entities

import "github.com/google/uuid"

// Profile is the denormalized, searchable user document. Keyed by the
// identity UUID; email is a denormalized copy of the relational record.
type Profile struct {
	UUID     uuid.UUID `json:"uuid"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	CP       int       `json:"cp"`
}

// UpdateProfileInput represents the allow-listed profile fields a user
// may change. Nil pointers leave the stored value untouched.
type UpdateProfileInput struct {
	FullName *string `json:"fullName" binding:"omitempty,min=3,max=128"`
	Address  *string `json:"address" binding:"omitempty,min=1"`
	CP       *int    `json:"cp" binding:"omitempty,min=5"`
}

// IsEmpty reports whether no field is set
func (i *UpdateProfileInput) IsEmpty() bool {
	return i.FullName == nil && i.Address == nil && i.CP == nil
}
