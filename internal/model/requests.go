package model

type InjectionRequest struct {
	UserID   int64  `json:"user_id" binding:"required" example:"123456789"`
	LiveryID string `json:"livery_id" binding:"required" example:"lv_gtr35_nismo"`
}

type InjectionResponse struct {
	Status          string `json:"status" example:"success"`
	LiveryID        string `json:"livery_id" example:"lv_gtr35_nismo"`
	LiveryName      string `json:"livery_name" example:"Nismo Works"`
	PointsDeducted  int64  `json:"points_deducted" example:"1000"`
	NewBalance      int64  `json:"new_balance" example:"4000"`
	ExecutionTimeMs int64  `json:"execution_time_ms,omitempty" example:"1843"`
	Error           string `json:"error,omitempty"`
}

type AmountRequest struct {
	Amount int64 `json:"amount" binding:"required" example:"5000"`
}

type RegisterRequest struct {
	UserID    int64   `json:"user_id" binding:"required" example:"123456789"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type AdminFlagRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

type CostRequest struct {
	Amount  int64 `json:"amount" binding:"required" example:"1000"`
	AdminID int64 `json:"admin_id" binding:"required" example:"99"`
}

type UserStatsResponse struct {
	UserID          int64 `json:"user_id" example:"123456789"`
	Points          int64 `json:"points" example:"5000"`
	SuccessfulToday int64 `json:"successful_injections_today" example:"2"`
}

type CredentialRequest struct {
	PlayfabToken string `json:"playfab_token" binding:"required"`
}

type BalanceResponse struct {
	UserID int64 `json:"user_id" example:"123456789"`
	Points int64 `json:"points" example:"5000"`
}

type TopupCreateRequest struct {
	UserID    int64 `json:"user_id" binding:"required" example:"123456789"`
	ProductID int64 `json:"product_id" binding:"required" example:"1"`
}

type ConfirmRequest struct {
	AdminID int64 `json:"admin_id" binding:"required" example:"99"`
}

type ConfirmResponse struct {
	Confirmed bool   `json:"confirmed"`
	Message   string `json:"message,omitempty" example:"transaction confirmed"`
}

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required" example:"Starter Pack"`
	Points      int64   `json:"points" binding:"required" example:"5000"`
	PriceIDR    int64   `json:"price_idr" binding:"required" example:"50000"`
	Description *string `json:"description,omitempty"`
}

type RefreshResponse struct {
	Processed int `json:"processed" example:"412"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient points"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_POINTS"`
	Details string `json:"details,omitempty"`
}
