package user

import (
	"context"
	"strings"

	"github.com/shinewhite/clinic_backend/internal/store"
)

type CreateUserRequest struct {
	Username    string
	Password    string
	FullName    string
	Role        store.Role
	PhoneNumber string
	Email       string
}

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*store.User, error)
	GetByID(ctx context.Context, id int64) (*store.User, error)
	List(ctx context.Context) ([]store.User, error)
	ListDoctors(ctx context.Context) ([]store.User, error)

	// Authenticate checks the username/password pair and returns the
	// account on success.
	Authenticate(ctx context.Context, username, password string) (*store.User, error)
}

type userService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &userService{store: s}
}

func (s *userService) Create(_ context.Context, req CreateUserRequest) (*store.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" || req.FullName == "" || req.Role == "" {
		return nil, ErrInvalidUserData
	}

	if _, ok := s.store.Users.Find(func(u store.User) bool { return u.Username == username }); ok {
		return nil, ErrUsernameTaken
	}

	created := s.store.CreateUser(store.User{
		Username:    username,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})

	return &created, nil
}

func (s *userService) GetByID(_ context.Context, id int64) (*store.User, error) {
	u, ok := s.store.Users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *userService) List(_ context.Context) ([]store.User, error) {
	return s.store.Users.List(), nil
}

func (s *userService) ListDoctors(_ context.Context) ([]store.User, error) {
	return s.store.Users.Filter(func(u store.User) bool { return u.Role == store.RoleDoctor }), nil
}

func (s *userService) Authenticate(_ context.Context, username, password string) (*store.User, error) {
	u, ok := s.store.Users.Find(func(u store.User) bool { return u.Username == username })
	if !ok || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
