package payload

import (
	"minitwit/internal/core"
)

type MessageRequest struct {
	Content string `json:"content"`
}

func (m MessageRequest) ToMessage() core.PostMessage {
	return core.PostMessage{
		Content: m.Content,
	}
}
