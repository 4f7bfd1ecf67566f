package payload

import (
	"minitwit/internal/core"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"pwd"`
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
