package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad field"), KindValidation},
		{"not found", NotFound("user %s not found", "u1"), KindNotFound},
		{"business rule", BusinessRule("insufficient stock"), KindBusinessRule},
		{"gorm record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"wrapped gorm record not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"wrapped tagged error", fmt.Errorf("place order: %w", BusinessRule("insufficient stock")), KindBusinessRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   bool
	}{
		{"validation is 400 with message", Validation("bad field"), http.StatusBadRequest, true},
		{"business rule is 400 with message", BusinessRule("insufficient stock"), http.StatusBadRequest, true},
		{"not found is bare 404", gorm.ErrRecordNotFound, http.StatusNotFound, false},
		{"anything else is 500 with message", errors.New("boom"), http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Respond(c, tt.err)
			// Gin's engine flushes a deferred c.Status at the end of the
			// handler chain; CreateTestContext has no chain, so flush here.
			c.Writer.WriteHeaderNow()
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody {
				assert.Contains(t, w.Body.String(), "message")
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
