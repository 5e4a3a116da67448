package domain

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID     int
	Name   string
	Email  string
	Role   string
	Active bool
}

// UserView is the public projection of a user. Email is never exposed.
type UserView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Role: u.Role, Active: u.Active}
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=customer admin"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"omitempty,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=customer admin"`
}

func (r UpdateUserRequest) Apply(u User) User {
	if r.Name != "" {
		u.Name = r.Name
	}
	if r.Email != "" {
		u.Email = r.Email
	}
	if r.Role != "" {
		u.Role = r.Role
	}
	return u
}
