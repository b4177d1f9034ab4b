package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки заказов
var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderInFlight  = errors.New("user already has a live order")
	ErrOrderFinalized = errors.New("order already finalized")
)

// Ошибки каталога, стока и баллов
var (
	ErrFlavorNotFound     = errors.New("flavor not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// Ошибки валидации входных данных
var (
	ErrInvalidInput = errors.New("invalid input")
)
