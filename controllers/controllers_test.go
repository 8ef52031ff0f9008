package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the package database at a fresh in-memory store migrated
// for the given models. The shared-cache name keeps the database alive across
// the pooled connections of one test.
func setupTestDB(t *testing.T, tables ...any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	initializers.DB = db
}

func jsonRequest(t *testing.T, method, target string, payload any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return recorder, ctx
}
