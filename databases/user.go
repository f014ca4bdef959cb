package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rwandapathways/pathways-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user collection. Users are
// never hard-deleted.
type UserDatabase interface {
	FindOne(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context) ([]models.User, error)
	Filter(ctx context.Context, match func(models.User) bool) ([]models.User, error)
	InsertOne(ctx context.Context, user models.User) (*models.User, error)
	UpdateOne(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindOne(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userName).FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userName).FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) Find(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := u.db.Collection(userName).Find(ctx, bson.M{}).Decode(&users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userDatabase) Filter(ctx context.Context, match func(models.User) bool) ([]models.User, error) {
	users, err := u.Find(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(users, func(user models.User, _ int) bool { return match(user) }), nil
}

// InsertOne stores a new user. The email check and the insert are two round
// trips, so two concurrent registrations of one email can both succeed
// unless users.email carries a unique index.
func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (*models.User, error) {
	_, err := u.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	user.ID = uuid.New().String()
	user.Email = normalizeEmail(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if _, err := u.db.Collection(userName).InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &user, nil
}

func (u *userDatabase) UpdateOne(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	current, err := u.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*current)
	matched, err := u.db.Collection(userName).ReplaceOne(ctx, bson.M{"_id": id}, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to replace user: %w", err)
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return &updated, nil
}

// emails are matched exactly after trimming and lower-casing
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type memoryUserDatabase struct {
	s *MemoryStore
}

// NewMemoryUserDatabase serves users out of the in-memory store
func NewMemoryUserDatabase(s *MemoryStore) UserDatabase {
	return &memoryUserDatabase{s: s}
}

func (m *memoryUserDatabase) find(match func(models.User) bool) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	user, ok := lo.Find(m.s.users, match)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *memoryUserDatabase) FindOne(ctx context.Context, id string) (*models.User, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	return m.find(func(u models.User) bool { return u.ID == id })
}

func (m *memoryUserDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := m.s.wait(ctx, authDelay); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memoryUserDatabase) Find(ctx context.Context) ([]models.User, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return slices.Clone(m.s.users), nil
}

func (m *memoryUserDatabase) Filter(ctx context.Context, match func(models.User) bool) ([]models.User, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := lo.Filter(m.s.users, func(u models.User, _ int) bool { return match(u) })
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}

func (m *memoryUserDatabase) InsertOne(ctx context.Context, user models.User) (*models.User, error) {
	if err := m.s.wait(ctx, authDelay); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user.Email = normalizeEmail(user.Email)
	if lo.ContainsBy(m.s.users, func(u models.User) bool { return u.Email == user.Email }) {
		return nil, ErrDuplicateEmail
	}
	user.ID = m.s.newID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = m.s.now()
	}
	m.s.users = append(m.s.users, user)
	return &user, nil
}

func (m *memoryUserDatabase) UpdateOne(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if err := m.s.wait(ctx, writeDelay); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idx := slices.IndexFunc(m.s.users, func(u models.User) bool { return u.ID == id })
	if idx == -1 {
		return nil, ErrNotFound
	}
	m.s.users[idx] = patch.Apply(m.s.users[idx])
	out := m.s.users[idx]
	return &out, nil
}
