package payload

import (
	"minitwit/internal/core"

	"github.com/jellydator/validation"
)

// maxFieldLength matches the varchar(255) user columns.
const maxFieldLength = 255

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"pwd"`
}

// Validate only bounds field sizes. Presence and format are checked by the
// simulator so it can answer with its own messages.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Length(0, maxFieldLength)),
		validation.Field(&r.Email, validation.Length(0, maxFieldLength)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}
