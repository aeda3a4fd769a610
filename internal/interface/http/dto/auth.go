package dto

// RegisterRequest 注册
// bcrypt只处理前72字节，超长密码直接拒绝
type RegisterRequest struct {
	Name     string `json:"name" binding:"notblank,max=255" example:"Ana"`
	Email    string `json:"email" binding:"required,email,max=255" example:"ana@example.com"`
	Password string `json:"password" binding:"notblank,max=72" example:"secret1"`
}

// LoginRequest 登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}
