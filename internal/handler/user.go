package handler

import (
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) GetUsers(c echo.Context, _ *model.GetUsersRequest) ([]model.User, error) {
	return h.userService.GetUsers(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *model.GetUserRequest) (*model.User, error) {
	return h.userService.GetUser(c.Request().Context(), req.ID)
}

// SearchUsers matches ?name= case-insensitively anywhere in the name. An
// empty term returns every user.
func (h *UserHandler) SearchUsers(c echo.Context, req *model.SearchUsersRequest) ([]model.User, error) {
	return h.userService.SearchUsers(c.Request().Context(), req.Name)
}

func (h *UserHandler) GetUsersByStatus(c echo.Context, req *model.GetUsersByStatusRequest) ([]model.User, error) {
	return h.userService.GetUsersByStatus(c.Request().Context(), req.IsActive)
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, err := h.userService.CreateUser(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/users/%d", user.ID))
	return user, nil
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserRequest) error {
	return h.userService.UpdateUser(c.Request().Context(), req.ID, req.Patch())
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.DeleteUserRequest) error {
	return h.userService.DeleteUser(c.Request().Context(), req.ID)
}
