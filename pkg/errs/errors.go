package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Bad request")
	ErrMissingFields        = errors.New("Missing required fields")
	ErrInvalidPrice         = errors.New("Price must be a non-negative number")
	ErrInvalidProductID     = errors.New("Invalid product ID")
	ErrInvalidQuantity      = errors.New("Item quantity must be a positive number")
	ErrProductNotFound      = errors.New("Product not found")
	ErrProductReferenced    = errors.New("Product is referenced by existing orders. Remove them first.")
	ErrOrderProductNotFound = errors.New("Order references a non-existent product")
	ErrEmailAlreadyUsed     = errors.New("Email already registered")
	ErrAccountNotFound      = errors.New("Account not found")
	ErrInvalidPassword      = errors.New("Invalid password")
	ErrRouteNotFound        = errors.New("Route not found")
)

var errorMap = map[error]int{
	ErrInternalServer:       http.StatusInternalServerError,
	ErrClient:               http.StatusBadRequest,
	ErrMissingFields:        http.StatusBadRequest,
	ErrInvalidPrice:         http.StatusBadRequest,
	ErrInvalidProductID:     http.StatusBadRequest,
	ErrInvalidQuantity:      http.StatusBadRequest,
	ErrProductNotFound:      http.StatusNotFound,
	ErrProductReferenced:    http.StatusConflict,
	ErrOrderProductNotFound: http.StatusBadRequest,
	ErrEmailAlreadyUsed:     http.StatusBadRequest,
	ErrAccountNotFound:      http.StatusNotFound,
	ErrInvalidPassword:      http.StatusUnauthorized,
	ErrRouteNotFound:        http.StatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = http.StatusInternalServerError
	}
	return errStatusCode
}
