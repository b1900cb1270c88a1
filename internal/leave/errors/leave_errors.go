package leaveerrors

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
	ErrInvalidAdminID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid admin id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave request overlaps with an existing request",
		http.StatusConflict,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Request is not pending",
		http.StatusBadRequest,
	)
)

// InsufficientBalance is the creation-time (advisory) failure; it names
// the days still available so the form can show them.
func InsufficientBalance(typeLabel string, available int) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeInsufficientBalance,
		http.StatusBadRequest,
		"Insufficient %s balance. Available: %d",
		typeLabel, available,
	)
}

// InsufficientBalanceOnApproval is the authoritative failure raised
// inside the approval transaction.
func InsufficientBalanceOnApproval(typeLabel string) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeInsufficientBalance,
		http.StatusBadRequest,
		"Insufficient %s balance during approval",
		typeLabel,
	)
}
