// internals/testutils/testutils.go
package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aModel "hrmslite_backend/internals/features/attendance/model"
	eModel "hrmslite_backend/internals/features/employees/model"
	helper "hrmslite_backend/internals/helpers"
	routes "hrmslite_backend/internals/route"
)

// NewTestDB membuka sqlite in-memory + migrasi schema lengkap.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: hidup per koneksi; paksa satu koneksi supaya schema kelihatan semua
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&eModel.EmployeeModel{}, &aModel.AttendanceModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewTestApp merakit app lengkap (routes + error handler) di atas DB test.
func NewTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := NewTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	routes.SetupRoutes(app, db)
	return app, db
}

func DoJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func Decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
