package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ShareRequest struct {
	UserEmails []string `json:"userEmails" binding:"required"`
}

type RevokeShareRequest struct {
	// TargetUserID names the grantee an owner removes. Grantees leave it
	// unset to remove themselves.
	TargetUserID uint64 `json:"target_user_id"`
}
