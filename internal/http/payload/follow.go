package payload

import (
	"minitwit/internal/core"
)

type FollowRequest struct {
	Follow   string `json:"follow,omitempty"`
	Unfollow string `json:"unfollow,omitempty"`
}

func (f FollowRequest) ToMessage() core.FollowMessage {
	return core.FollowMessage{
		Follow:   f.Follow,
		Unfollow: f.Unfollow,
	}
}
