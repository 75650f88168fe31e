package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/user/cinematch/internal/middleware"
	"github.com/user/cinematch/internal/model"
	"github.com/user/cinematch/internal/utils"
)

// registerRequest 注册请求
type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// loginRequest 登录请求
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userPayload 对外暴露的用户信息
func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	}
}

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	// 检查邮箱是否已存在
	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if existing != nil {
		utils.Conflict(c, "该邮箱已被注册")
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("[Auth] 创建用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		log.Printf("[Auth] 签发 Token 失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	h.setAuthState(c, user, token)

	utils.SuccessWithMessage(c, "注册成功", userPayload(user))
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	// 不泄露邮箱与密码哪一项出错
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		log.Printf("[Auth] 签发 Token 失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	h.setAuthState(c, user, token)

	utils.SuccessWithMessage(c, "登录成功", userPayload(user))
}

// Logout 登出
func (h *Handler) Logout(c *gin.Context) {
	h.clearAuthState(c)
	utils.SuccessWithMessage(c, "已退出登录", nil)
}

// Me 获取当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.Repos.User.FindByID(userID)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}

	utils.Success(c, userPayload(user))
}
