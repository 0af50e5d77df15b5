package request

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Role     string  `json:"role" validate:"required,oneof=customer admin"`
	IsActive bool    `json:"isActive"`
}
