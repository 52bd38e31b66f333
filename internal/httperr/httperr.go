package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Known business codes and how they surface over HTTP. These are hard
// failures: the request was not applied. Sync warnings are response data,
// never written through here.
var businessResponses = map[string]struct {
	status  int
	message string
}{
	"empty_cart":               {http.StatusBadRequest, "Add at least one service before booking."},
	"invalid_date":             {http.StatusBadRequest, "Could not understand that date."},
	"invalid_time":             {http.StatusBadRequest, "Could not understand that time."},
	"booking_not_found":        {http.StatusNotFound, "Booking not found."},
	"too_close_to_appointment": {http.StatusBadRequest, "Appointments can only be rescheduled at least 24 hours in advance. Please contact us directly for assistance."},
}

// FromBusiness writes the mapped response for a BusinessError and reports
// whether it handled the error. Unknown errors are left to the caller.
func FromBusiness(c *gin.Context, err error) bool {
	be, ok := AsBusiness(err)
	if !ok {
		return false
	}
	resp, ok := businessResponses[be.Code]
	if !ok {
		return false
	}
	Write(c, resp.status, be.Code, resp.message)
	return true
}
