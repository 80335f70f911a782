package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"fleetops/internal/store"
)

// bindJSON parses the request body into obj and writes a 400 with per-field
// details on failure. Validation never reaches the store.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	details := gin.H{}
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			details[fieldName(fe.Field())] = reasonFor(fe)
		}
	case errors.As(err, &typeErr):
		details[typeErr.Field] = fmt.Sprintf("Not a valid %s.", typeErr.Type.String())
	default:
		details["body"] = err.Error()
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": details})
	return false
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	default:
		return fmt.Sprintf("Failed validation: %s.", fe.Tag())
	}
}

// fieldName lowers the Go field name to its json counterpart.
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteByte(byte(r - 'A' + 'a'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseID reads the named path parameter as an id; 0 means it was malformed
// and a 400 has already been written.
func parseID(c *gin.Context, param string) uint {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " parameter"})
		return 0
	}
	return uint(id)
}

func notFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}

// storageError logs the underlying failure and returns an opaque message; the
// driver error text never reaches the client.
func storageError(c *gin.Context, op string, err error) {
	logrus.WithError(err).Errorf("storage error in %s", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while " + op})
}

// respondStoreError maps gateway errors from a read-or-mutate call.
func respondStoreError(c *gin.Context, resource, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, resource)
		return
	}
	storageError(c, op, err)
}
