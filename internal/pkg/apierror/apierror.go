// Package apierror maps board and csv errors onto the response envelope.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/csvio"
	"opsboard/internal/pkg/response"
)

type mapping struct {
	target error
	status int
	code   string
}

var mappings = []mapping{
	{board.ErrWorkerNotFound, http.StatusNotFound, "NOT_FOUND"},
	{board.ErrEquipmentNotFound, http.StatusNotFound, "NOT_FOUND"},
	{board.ErrProjectNotFound, http.StatusNotFound, "NOT_FOUND"},
	{board.ErrCompanyNotFound, http.StatusNotFound, "NOT_FOUND"},
	{board.ErrTimeEntryNotFound, http.StatusNotFound, "NOT_FOUND"},

	{board.ErrNameRequired, http.StatusBadRequest, "VALIDATION_ERROR"},
	{board.ErrAssetNumberRequired, http.StatusBadRequest, "VALIDATION_ERROR"},
	{board.ErrInvalidHours, http.StatusBadRequest, "VALIDATION_ERROR"},
	{board.ErrInvalidDate, http.StatusBadRequest, "VALIDATION_ERROR"},
	{board.ErrUnknownKind, http.StatusBadRequest, "VALIDATION_ERROR"},
	{board.ErrTooManyContacts, http.StatusBadRequest, "TOO_MANY_CONTACTS"},
	{csvio.ErrMalformedCSV, http.StatusBadRequest, "MALFORMED_CSV"},
	{csvio.ErrUnknownTable, http.StatusBadRequest, "VALIDATION_ERROR"},

	{board.ErrDuplicateID, http.StatusConflict, "CONFLICT"},
	{board.ErrCompanyLimit, http.StatusConflict, "COMPANY_LIMIT"},
	{board.ErrSystemProject, http.StatusConflict, "SYSTEM_PROJECT"},
	{board.ErrNotAssigned, http.StatusConflict, "NOT_ASSIGNED"},
	{board.ErrNothingToUndo, http.StatusConflict, "NOTHING_TO_UNDO"},
}

// Write sends the envelope for err. Unknown errors become 500 and are attached
// to the context for the error logger.
func Write(c *gin.Context, err error) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			response.Error(c, m.status, m.code, err.Error())
			return
		}
	}
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
}

// BadRequest answers an unparsable body.
func BadRequest(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
}

// Invalid answers a body that failed field validation.
func Invalid(c *gin.Context, details map[string]string) {
	response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
}
