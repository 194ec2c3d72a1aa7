package dailysummaryerrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrSummaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Daily summary not found",
		http.StatusNotFound,
	)

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrRebuildInProgress = apperror.New(
		"REBUILD_IN_PROGRESS",
		"Daily summaries for this project are being rebuilt, try again shortly",
		http.StatusConflict,
	)
)
