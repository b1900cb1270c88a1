package balanceerrors

import (
	"net/http"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Balance record not found",
		http.StatusNotFound,
	)
	ErrUnknownBalanceField = apperror.New(
		apperror.CodeInvalidInput,
		"unknown balance field",
		http.StatusBadRequest,
	)
)
