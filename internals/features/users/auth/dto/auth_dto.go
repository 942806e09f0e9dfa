package dto

import "strings"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,min=3,max=100"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	NIM                  string `json:"nim" validate:"omitempty,max=30"`
	ProgramStudiID       string `json:"program_studi_id"`
	Phone                string `json:"phone" validate:"omitempty,max=20"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.NIM = strings.TrimSpace(r.NIM)
}

// ToPayload memakai nama field yang diharapkan Laravel.
func (r RegisterRequest) ToPayload() map[string]any {
	out := map[string]any{
		"name":                  r.Name,
		"email":                 r.Email,
		"password":              r.Password,
		"password_confirmation": r.PasswordConfirmation,
	}
	if r.NIM != "" {
		out["nim"] = r.NIM
	}
	if r.ProgramStudiID != "" {
		out["program_studi_id"] = r.ProgramStudiID
	}
	if r.Phone != "" {
		out["phone"] = r.Phone
	}
	return out
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expiresAt"`
	User      map[string]any `json:"user"`
	Role      string         `json:"role"`
}
