package contacts

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateContactDetection(t *testing.T) {
	dup := &mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry '42-555' for key 'idx_contacts_user_phone'"}
	assert.True(t, isDuplicateContactError(dup))
	assert.True(t, isDuplicateContactError(fmt.Errorf("create contact: %w", dup)))
	assert.True(t, isDuplicateContactError(errors.New("Duplicate entry '42-555'")))

	assert.False(t, isDuplicateContactError(&mysqlDriver.MySQLError{Number: 1045}))
	assert.False(t, isDuplicateContactError(errors.New("connection refused")))
}

func TestCreateContactValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(nil)).RegisterRoutes(router.Group("/api/v1"))

	// Missing required phone never reaches the database.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts",
		strings.NewReader(`{"name":"Maria"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone")
}
