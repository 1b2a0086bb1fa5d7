package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	eModel "hrmslite_backend/internals/features/employees/model"
	"hrmslite_backend/internals/testutils"
)

func createEmployee(t *testing.T, app *fiber.App, id, name, email, dept string) {
	t.Helper()
	resp := testutils.DoJSON(t, app, http.MethodPost, "/employees", map[string]string{
		"employee_id": id, "name": name, "email": email, "department": dept,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee %s: status = %d, want 201", id, resp.StatusCode)
	}
	resp.Body.Close()
}

func markAttendance(t *testing.T, app *fiber.App, id, date, status string) *http.Response {
	t.Helper()
	return testutils.DoJSON(t, app, http.MethodPost, "/attendance", map[string]string{
		"employee_id": id, "date": date, "status": status,
	})
}

func TestCreateEmployee(t *testing.T) {
	app, _ := testutils.NewTestApp(t)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/employees", map[string]string{
		"employee_id": "E1", "name": "Ann", "email": "a@x.com", "department": "Eng",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var got map[string]string
	testutils.Decode(t, resp, &got)
	want := map[string]string{"employee_id": "E1", "name": "Ann", "email": "a@x.com", "department": "Eng"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestCreateEmployeeDuplicates(t *testing.T) {
	app, _ := testutils.NewTestApp(t)
	createEmployee(t, app, "E1", "Ann", "a@x.com", "Eng")

	// employee_id sama, email beda
	resp := testutils.DoJSON(t, app, http.MethodPost, "/employees", map[string]string{
		"employee_id": "E1", "name": "Bob", "email": "b@x.com", "department": "Ops",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate id: status = %d, want 409", resp.StatusCode)
	}
	var body map[string]string
	testutils.Decode(t, resp, &body)
	if body["detail"] != "Employee ID already exists" {
		t.Errorf("detail = %q", body["detail"])
	}

	// email sama, employee_id beda
	resp = testutils.DoJSON(t, app, http.MethodPost, "/employees", map[string]string{
		"employee_id": "E2", "name": "Bob", "email": "a@x.com", "department": "Ops",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate email: status = %d, want 409", resp.StatusCode)
	}
	testutils.Decode(t, resp, &body)
	if body["detail"] != "Email already registered" {
		t.Errorf("detail = %q", body["detail"])
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	app, _ := testutils.NewTestApp(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing employee_id", map[string]string{"name": "Ann", "email": "a@x.com", "department": "Eng"}},
		{"missing name", map[string]string{"employee_id": "E1", "email": "a@x.com", "department": "Eng"}},
		{"bad email", map[string]string{"employee_id": "E1", "name": "Ann", "email": "not-an-email", "department": "Eng"}},
		{"missing department", map[string]string{"employee_id": "E1", "name": "Ann", "email": "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutils.DoJSON(t, app, http.MethodPost, "/employees", tt.body)
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", resp.StatusCode)
			}
			resp.Body.Close()
		})
	}
}

func TestListEmployeesEmpty(t *testing.T) {
	app, _ := testutils.NewTestApp(t)

	resp := testutils.DoJSON(t, app, http.MethodGet, "/employees", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var list []map[string]interface{}
	testutils.Decode(t, resp, &list)
	if list == nil || len(list) != 0 {
		t.Errorf("list = %v, want empty array", list)
	}
}

func TestListEmployeesPresentDays(t *testing.T) {
	app, _ := testutils.NewTestApp(t)
	createEmployee(t, app, "E1", "Ann", "a@x.com", "Eng")
	createEmployee(t, app, "E2", "Bob", "b@x.com", "Ops")

	// E1: 3x Present + 1x Absent → total_present_days = 3
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		resp := markAttendance(t, app, "E1", d, "Present")
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("mark %s: status = %d", d, resp.StatusCode)
		}
		resp.Body.Close()
	}
	resp := markAttendance(t, app, "E1", "2024-01-04", "Absent")
	resp.Body.Close()

	resp = testutils.DoJSON(t, app, http.MethodGet, "/employees", nil)
	var list []struct {
		EmployeeID       string `json:"employee_id"`
		TotalPresentDays int    `json:"total_present_days"`
	}
	testutils.Decode(t, resp, &list)

	counts := map[string]int{}
	for _, e := range list {
		counts[e.EmployeeID] = e.TotalPresentDays
	}
	if counts["E1"] != 3 {
		t.Errorf("E1 total_present_days = %d, want 3", counts["E1"])
	}
	if counts["E2"] != 0 {
		t.Errorf("E2 total_present_days = %d, want 0", counts["E2"])
	}
}

func TestListEmployeesCappedAt1000(t *testing.T) {
	app, db := testutils.NewTestApp(t)

	// seed langsung lewat GORM, lebih dari cap
	rows := make([]eModel.EmployeeModel, 0, 1001)
	for i := 0; i < 1001; i++ {
		rows = append(rows, eModel.EmployeeModel{
			EmployeeID:         fmt.Sprintf("E%04d", i),
			EmployeeName:       fmt.Sprintf("Emp %d", i),
			EmployeeEmail:      fmt.Sprintf("e%04d@x.com", i),
			EmployeeDepartment: "Eng",
		})
	}
	if err := db.CreateInBatches(rows, 200).Error; err != nil {
		t.Fatalf("seed employees: %v", err)
	}

	resp := testutils.DoJSON(t, app, http.MethodGet, "/employees", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var list []map[string]interface{}
	testutils.Decode(t, resp, &list)
	if len(list) != 1000 {
		t.Errorf("list = %d records, want capped at 1000", len(list))
	}
}

func TestDeleteEmployeeCascades(t *testing.T) {
	app, _ := testutils.NewTestApp(t)
	createEmployee(t, app, "E1", "Ann", "a@x.com", "Eng")
	resp := markAttendance(t, app, "E1", "2024-01-01", "Present")
	resp.Body.Close()

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/employees/E1", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	// employee hilang
	resp = testutils.DoJSON(t, app, http.MethodDelete, "/employees/E1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	// list per-employee ikut 404
	resp = testutils.DoJSON(t, app, http.MethodGet, "/employees/E1/attendance", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("attendance by employee: status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	// record attendance lamanya ikut terhapus
	resp = testutils.DoJSON(t, app, http.MethodGet, "/attendance", nil)
	var list []map[string]interface{}
	testutils.Decode(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("attendance after cascade = %v, want empty", list)
	}
}
