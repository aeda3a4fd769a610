package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/catalog/internal/application/auth"
	"github.com/xiebiao/catalog/internal/interface/http/dto"
	"github.com/xiebiao/catalog/internal/interface/http/middleware"
	"github.com/xiebiao/catalog/pkg/response"
	"github.com/xiebiao/catalog/pkg/validation"
)

// AuthHandler 认证HTTP处理器
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register 注册
// @Summary      用户注册
// @Description  注册成功后直接返回Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} auth.Result
// @Failure      400 {object} response.ErrorBody "参数错误或Email already exists"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	res, err := h.uc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login 登录
// @Summary      用户登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} auth.Result
// @Failure      401 {object} response.ErrorBody "User/Password not valid"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	res, err := h.uc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Verify 校验Token并续期
// @Summary      校验Token
// @Description  Token有效时用相同的用户信息重新签发
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} auth.Result
// @Failure      401 {object} response.ErrorBody "Invalid token"
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	res, err := h.uc.Verify(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Logout 登出
// @Summary      登出
// @Description  当前Token加入黑名单直到过期
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.MessageBody
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.uc.Logout(c.Request.Context(), middleware.GetToken(c), middleware.GetClaims(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Logged out")
}
