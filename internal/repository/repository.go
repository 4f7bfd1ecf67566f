package repository

import (
	"context"
	"errors"
	"fmt"

	"minitwit/internal/db"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrUsernameTaken    error = errors.New("username already taken")
	ErrAlreadyFollowing error = errors.New("already following")
	ErrNotFollowing     error = errors.New("not following")
)

// NoLatest is reported by GetLatest before the simulator recorded any value.
const NoLatest = -1

type SimulatorRepository struct {
	db Storage
}

func NewSimulatorRepository(db Storage) *SimulatorRepository {
	return &SimulatorRepository{
		db: db,
	}
}

func (r *SimulatorRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Message{}, &Follower{}, &Latest{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// Seed inserts users in order when the users table is empty.
func (r *SimulatorRepository) Seed(ctx context.Context, users []User) error {
	err := r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *SimulatorRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *SimulatorRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *SimulatorRepository) Follow(ctx context.Context, whoID, whomID uint) error {
	created, err := r.db.CreateIfAbsent(ctx, &Follower{WhoID: whoID, WhomID: whomID})
	if err != nil {
		return fmt.Errorf("create follower: %w", err)
	}
	if !created {
		return ErrAlreadyFollowing
	}

	return nil
}

func (r *SimulatorRepository) Unfollow(ctx context.Context, whoID, whomID uint) error {
	deleted, err := r.db.DeleteWhere(ctx, &Follower{}, map[string]any{
		"who_id":  whoID,
		"whom_id": whomID,
	})
	if err != nil {
		return fmt.Errorf("delete follower: %w", err)
	}
	if deleted == 0 {
		return ErrNotFollowing
	}

	return nil
}

func (r *SimulatorRepository) IsFollowing(ctx context.Context, whoID, whomID uint) (bool, error) {
	count, err := r.db.CountWhere(ctx, &Follower{}, map[string]any{
		"who_id":  whoID,
		"whom_id": whomID,
	})
	if err != nil {
		return false, fmt.Errorf("count followers: %w", err)
	}

	return count > 0, nil
}

// GetFollows returns the usernames whoID follows.
func (r *SimulatorRepository) GetFollows(ctx context.Context, whoID uint, limit int) ([]string, error) {
	var edges []Follower

	err := r.db.FindAll(ctx, &edges, db.FindOptions{
		Where:   map[string]any{"who_id": whoID},
		Order:   "whom_id",
		Limit:   limit,
		Preload: []string{"Whom"},
	})
	if err != nil {
		return nil, fmt.Errorf("get follows: %w", err)
	}

	usernames := make([]string, 0, len(edges))
	for _, edge := range edges {
		usernames = append(usernames, edge.Whom.Username)
	}

	return usernames, nil
}

func (r *SimulatorRepository) CreateMessage(ctx context.Context, msg Message) (Message, error) {
	err := r.db.Create(ctx, &msg)
	if err != nil {
		return Message{}, fmt.Errorf("create message: %w", err)
	}

	return msg, nil
}

// GetMessages returns unflagged messages, newest first, with their authors.
func (r *SimulatorRepository) GetMessages(ctx context.Context, limit int) ([]Message, error) {
	return r.findMessages(ctx, map[string]any{"flagged": false}, limit)
}

func (r *SimulatorRepository) GetUserMessages(ctx context.Context, authorID uint, limit int) ([]Message, error) {
	return r.findMessages(ctx, map[string]any{"author_id": authorID, "flagged": false}, limit)
}

func (r *SimulatorRepository) findMessages(ctx context.Context, where map[string]any, limit int) ([]Message, error) {
	messages := []Message{}

	err := r.db.FindAll(ctx, &messages, db.FindOptions{
		Where:   where,
		Order:   "pub_date desc, id desc",
		Limit:   limit,
		Preload: []string{"Author"},
	})
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}

	return messages, nil
}

func (r *SimulatorRepository) CountMessages(ctx context.Context, authorID uint) (int64, error) {
	count, err := r.db.CountWhere(ctx, &Message{}, map[string]any{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}

	return count, nil
}

func (r *SimulatorRepository) GetLatest(ctx context.Context) (int, error) {
	var latest Latest

	err := r.db.GetOneBy(ctx, "id", latestRowID, &latest)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return NoLatest, nil
		}
		return 0, fmt.Errorf("get latest: %w", err)
	}

	return latest.Value, nil
}

func (r *SimulatorRepository) SetLatest(ctx context.Context, value int) error {
	err := r.db.Upsert(ctx, &Latest{ID: latestRowID, Value: value})
	if err != nil {
		return fmt.Errorf("set latest: %w", err)
	}

	return nil
}
