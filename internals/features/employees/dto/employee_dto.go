// internals/features/employees/dto/employee_dto.go
package dto

import (
	eModel "hrmslite_backend/internals/features/employees/model"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=120"`
	Department string `json:"department" validate:"required,min=1,max=100"`
}

func (r *CreateEmployeeRequest) ToModel() *eModel.EmployeeModel {
	return &eModel.EmployeeModel{
		EmployeeID:         r.EmployeeID,
		EmployeeName:       r.Name,
		EmployeeEmail:      r.Email,
		EmployeeDepartment: r.Department,
	}
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func NewEmployeeResponse(m *eModel.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: m.EmployeeID,
		Name:       m.EmployeeName,
		Email:      m.EmployeeEmail,
		Department: m.EmployeeDepartment,
	}
}

// EmployeeWithStatsResponse dipakai GET /employees: baris hasil join
// employees × attendance. Alias kolom di query sudah disamakan dengan
// nama field (snake_case) supaya bisa di-Scan langsung.
type EmployeeWithStatsResponse struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	TotalPresentDays int    `json:"total_present_days"`
}
