package handler

import (
	"context"
	"net/http"

	"minitwit/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SimulatorService . SimulatorService
type SimulatorService interface {
	RegisterUser(ctx context.Context, msg core.RegisterMessage, latest int) core.Result
	Login(ctx context.Context, msg core.LoginMessage) core.Result
	AddFollower(ctx context.Context, target string, msg core.FollowMessage, latest int) core.Result
	AddMessage(ctx context.Context, username string, msg core.PostMessage, latest int) core.Result
	GetMessages(ctx context.Context, no int) core.Result
	GetUserMessages(ctx context.Context, username string, no int) core.Result
	GetFollows(ctx context.Context, username string, no int) core.Result
	GetLatest(ctx context.Context) core.Result
	UpdateLatest(ctx context.Context, latest int)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
