package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/service/user"
	"github.com/shinewhite/clinic_backend/internal/store"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrUsernameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidUserData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type userView struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	Role        store.Role `json:"role"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Email       string     `json:"email,omitempty"`
}

func toUserView(u store.User) userView {
	return userView{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
	}
}

// GET /api/users
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.svc.List(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return ok(c, views)
}

// GET /api/users/doctors
func (h *UserHandler) ListDoctors(c fiber.Ctx) error {
	doctors, err := h.svc.ListDoctors(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}

	views := make([]userView, 0, len(doctors))
	for _, u := range doctors {
		views = append(views, userView{ID: u.ID, FullName: u.FullName, Username: u.Username, Role: u.Role})
	}
	return ok(c, views)
}

// POST /api/users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		FullName    string `json:"fullName"`
		Role        string `json:"role"`
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Create(c.Context(), user.CreateUserRequest{
		Username:    body.Username,
		Password:    body.Password,
		FullName:    body.FullName,
		Role:        store.Role(body.Role),
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, toUserView(*u))
}
