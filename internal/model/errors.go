package model

import "errors"

var (
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrNoCredential         = errors.New("no playfab token configured")
	ErrUserNotFound         = errors.New("user not found")
	ErrItemNotFound         = errors.New("livery not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrSettingNotFound      = errors.New("setting not found")
)
