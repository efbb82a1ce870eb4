package admin

type CreateUserDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type ChangeRoleDTO struct {
	Role string `json:"role"`
}

type FreezeDTO struct {
	Reason string `json:"reason"`
}
