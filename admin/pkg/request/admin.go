package request

import "strings"

type Login struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l Login) Normalized() Login {
	l.Email = strings.TrimSpace(strings.ToLower(l.Email))
	return l
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

func (u UpdateOrderStatus) Normalized() UpdateOrderStatus {
	u.Status = strings.TrimSpace(strings.ToLower(u.Status))
	return u
}
