package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "github.com/snapstream/snapstream-api/internal/application/usecase/user"
)

type UserHandler struct {
	listUsersUC *userUC.ListUsersUseCase
}

func NewUserHandler(listUC *userUC.ListUsersUseCase) *UserHandler {
	return &UserHandler{listUsersUC: listUC}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	c.JSON(http.StatusOK, dtos)
}
