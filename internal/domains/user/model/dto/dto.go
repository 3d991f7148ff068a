package dto

import "deskhub/internal/domains/user/model"

// UserResponse is the public projection of a user. Email and timestamps are
// deliberately absent from the serialization.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func (u *UserResponse) FromModel(user model.User) {
	u.ID = user.ID
	u.Name = user.Name
	u.IsAdmin = user.IsAdmin
}
