package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"minitwit/internal/credential"
	"minitwit/internal/repository"
	tokenIssuer "minitwit/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is used by the read operations when no positive limit is given.
	DefaultLimit = 100
	// NoLatest tells the write operations not to record a latest value.
	NoLatest = repository.NoLatest

	actionFollow   = "follow"
	actionUnfollow = "unfollow"
)

var TimeNow = time.Now

type Options struct {
	AllowSelfFollow bool
	TokenTTL        time.Duration
}

// Simulator implements the simulator API operations on top of the repository.
type Simulator struct {
	logs      *zap.SugaredLogger
	repo      Repository
	hasher    PasswordHasher
	jwtIssuer JWTIssuer
	metrics   *Metrics
	opts      Options
}

// NewSimulator is a constructor function for the Simulator type.
func NewSimulator(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher, jwt JWTIssuer, metrics *Metrics, opts Options) *Simulator {
	return &Simulator{
		logs:      logger,
		repo:      repo,
		hasher:    hasher,
		jwtIssuer: jwt,
		metrics:   metrics,
		opts:      opts,
	}
}

// RegisterUser validates msg and creates a new user. The latest value is
// recorded whatever the outcome.
func (s *Simulator) RegisterUser(ctx context.Context, msg RegisterMessage, latest int) Result {
	defer s.UpdateLatest(ctx, latest)

	if err := validateRegistration(msg); err != nil {
		return s.fail("register user", err)
	}

	_, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return s.fail("register user", Conflict(msgUsernameTaken, repository.ErrUsernameTaken))
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return s.fail("register user", fmt.Errorf("get user by username: %w", err))
	}

	hash, err := s.hasher.Hash(msg.Password)
	if err != nil {
		if errors.Is(err, credential.ErrPasswordTooLong) {
			return s.fail("register user", Validation(msgPasswordTooLong))
		}
		return s.fail("register user", fmt.Errorf("hash password: %w", err))
	}

	user, err := s.repo.CreateUser(ctx, repository.User{
		Username: msg.Username,
		Email:    msg.Email,
		PwHash:   hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return s.fail("register user", Conflict(msgUsernameTaken, err))
		}
		return s.fail("register user", fmt.Errorf("create user: %w", err))
	}

	s.metrics.UsersRegistered.Inc()
	s.logs.Infow("user registered", "username", user.Username, "user_id", user.ID)

	return NoContent()
}

// Login checks the credentials and returns the user identity with a signed token.
func (s *Simulator) Login(ctx context.Context, msg LoginMessage) Result {
	user, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return s.fail("login", AuthFailed(msgUserUnknown, err))
		}
		return s.fail("login", fmt.Errorf("get user by username: %w", err))
	}

	if err = s.hasher.Compare(user.PwHash, msg.Password); err != nil {
		if errors.Is(err, credential.ErrPasswordMismatch) {
			return s.fail("login", AuthFailed(msgIncorrectCredential, err))
		}
		return s.fail("login", fmt.Errorf("compare password: %w", err))
	}

	token := s.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		ID:         uuid.NewString(),
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: s.opts.TokenTTL,
	})
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return s.fail("login", fmt.Errorf("signing token: %w", err))
	}

	return OK(Identity{
		UserID:   user.ID,
		Username: user.Username,
		Token:    signed,
	})
}

// AddFollower makes target follow or unfollow the user named in msg.
func (s *Simulator) AddFollower(ctx context.Context, target string, msg FollowMessage, latest int) Result {
	defer s.UpdateLatest(ctx, latest)

	if err := validateFollow(msg); err != nil {
		return s.fail("add follower", err)
	}

	who, err := s.lookupUser(ctx, target, msgFollowTarget)
	if err != nil {
		return s.fail("add follower", err)
	}

	if msg.Follow != "" {
		return s.follow(ctx, who, msg.Follow)
	}
	return s.unfollow(ctx, who, msg.Unfollow)
}

func (s *Simulator) follow(ctx context.Context, who repository.User, username string) Result {
	whom, err := s.lookupUser(ctx, username, msgFollowUnknown)
	if err != nil {
		return s.fail("follow", err)
	}

	if who.ID == whom.ID && !s.opts.AllowSelfFollow {
		return s.fail("follow", Validation(msgFollowSelf))
	}

	err = s.repo.Follow(ctx, who.ID, whom.ID)
	switch {
	case errors.Is(err, repository.ErrAlreadyFollowing):
		s.logs.Infow("already following", "username", who.Username, "follow", whom.Username)
		return NoContent()
	case err != nil:
		return s.fail("follow", fmt.Errorf("follow user: %w", err))
	}

	s.metrics.FollowChanges.WithLabelValues(actionFollow).Inc()
	s.logs.Infow("user followed", "username", who.Username, "follow", whom.Username)

	return NoContent()
}

func (s *Simulator) unfollow(ctx context.Context, who repository.User, username string) Result {
	whom, err := s.lookupUser(ctx, username, msgUnfollowUnknown)
	if err != nil {
		return s.fail("unfollow", err)
	}

	err = s.repo.Unfollow(ctx, who.ID, whom.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFollowing) {
			return s.fail("unfollow", InvalidState(msgNotFollowing, err))
		}
		return s.fail("unfollow", fmt.Errorf("unfollow user: %w", err))
	}

	s.metrics.FollowChanges.WithLabelValues(actionUnfollow).Inc()
	s.logs.Infow("user unfollowed", "username", who.Username, "unfollow", whom.Username)

	return NoContent()
}

// AddMessage posts msg on behalf of username.
func (s *Simulator) AddMessage(ctx context.Context, username string, msg PostMessage, latest int) Result {
	defer s.UpdateLatest(ctx, latest)

	author, err := s.lookupUser(ctx, username, msgUserDoesNotExist)
	if err != nil {
		return s.fail("add message", err)
	}

	if err := validatePost(msg); err != nil {
		return s.fail("add message", err)
	}

	_, err = s.repo.CreateMessage(ctx, repository.Message{
		AuthorID: author.ID,
		Text:     msg.Content,
		PubDate:  TimeNow().Unix(),
	})
	if err != nil {
		return s.fail("add message", fmt.Errorf("create message: %w", err))
	}

	s.metrics.MessagesPosted.Inc()
	s.logs.Infow("message posted", "username", author.Username)

	return NoContent()
}

// GetMessages returns the newest unflagged messages of all users.
func (s *Simulator) GetMessages(ctx context.Context, no int) Result {
	messages, err := s.repo.GetMessages(ctx, limit(no))
	if err != nil {
		return s.fail("get messages", fmt.Errorf("get messages: %w", err))
	}

	return OK(toRecords(messages))
}

func (s *Simulator) GetUserMessages(ctx context.Context, username string, no int) Result {
	author, err := s.lookupUser(ctx, username, msgUserDoesNotExist)
	if err != nil {
		return s.fail("get user messages", err)
	}

	messages, err := s.repo.GetUserMessages(ctx, author.ID, limit(no))
	if err != nil {
		return s.fail("get user messages", fmt.Errorf("get user messages: %w", err))
	}

	return OK(toRecords(messages))
}

func (s *Simulator) GetFollows(ctx context.Context, username string, no int) Result {
	user, err := s.lookupUser(ctx, username, msgUserDoesNotExist)
	if err != nil {
		return s.fail("get follows", err)
	}

	follows, err := s.repo.GetFollows(ctx, user.ID, limit(no))
	if err != nil {
		return s.fail("get follows", fmt.Errorf("get follows: %w", err))
	}

	return OK(FollowsRecord{Follows: follows})
}

func (s *Simulator) GetLatest(ctx context.Context) Result {
	latest, err := s.repo.GetLatest(ctx)
	if err != nil {
		return s.fail("get latest", fmt.Errorf("get latest: %w", err))
	}

	return OK(LatestRecord{Latest: latest})
}

// UpdateLatest stores latest unless it is NoLatest. Failures are logged only.
func (s *Simulator) UpdateLatest(ctx context.Context, latest int) {
	if latest == NoLatest {
		return
	}

	if err := s.repo.SetLatest(ctx, latest); err != nil {
		s.logs.Errorw("failed to update latest", "latest", latest, "error", err)
	}
}

// lookupUser resolves username, reporting an unknown user as NotFound with message.
func (s *Simulator) lookupUser(ctx context.Context, username, message string) (repository.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, NotFound(message, err)
		}
		return repository.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// fail converts err into a Result and logs errors the client does not see.
func (s *Simulator) fail(operation string, err error) Result {
	res := FromError(err)
	if res.Kind == KindInternalError {
		s.logs.Errorw("operation failed", "operation", operation, "error", err)
	}
	return res
}

func limit(no int) int {
	if no <= 0 {
		return DefaultLimit
	}
	return no
}

func toRecords(messages []repository.Message) []MessageRecord {
	records := make([]MessageRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, MessageRecord{
			Content: msg.Text,
			PubDate: msg.PubDate,
			User:    msg.Author.Username,
		})
	}
	return records
}
