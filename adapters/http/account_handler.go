package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapstream/snapstream-api/internal/application/usecase/account"
	"github.com/snapstream/snapstream-api/internal/domain/user"
	"github.com/snapstream/snapstream-api/pkg/apperror"
)

type AccountHandler struct {
	registerUC *account.RegisterUseCase
	loginUC    *account.LoginUseCase
}

func NewAccountHandler(registerUC *account.RegisterUseCase, loginUC *account.LoginUseCase) *AccountHandler {
	return &AccountHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid registration data", err))
		return
	}

	input := account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	}

	created, err := h.registerUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToUserDTO(created))
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid login data", err))
		return
	}

	input := account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	u, err := h.loginUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(u))
}
