package service

import "errors"

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrAlreadyInWishlist  = errors.New("product already in wishlist")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidTransition  = errors.New("illegal order status transition")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
