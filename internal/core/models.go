package core

type RegisterMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Username string
	Password string
}

// FollowMessage names the user to follow or unfollow. Exactly one is set.
type FollowMessage struct {
	Follow   string
	Unfollow string
}

type PostMessage struct {
	Content string
}

type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type MessageRecord struct {
	Content string `json:"content"`
	PubDate int64  `json:"pub_date"`
	User    string `json:"user"`
}

type FollowsRecord struct {
	Follows []string `json:"follows"`
}

type LatestRecord struct {
	Latest int `json:"latest"`
}
