// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	aModel "hrmslite_backend/internals/features/attendance/model"
)

/* ===================== REQUESTS ===================== */

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	// Status sengaja free-form (bukan oneof): sumber menerima string apa pun
	Status string `json:"status" validate:"required,max=30"`
}

func (r *CreateAttendanceRequest) ToModel() *aModel.AttendanceModel {
	return &aModel.AttendanceModel{
		AttendanceEmployeeID: r.EmployeeID,
		AttendanceDate:       r.Date,
		AttendanceStatus:     r.Status,
	}
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func NewAttendanceResponse(m *aModel.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID: m.AttendanceEmployeeID,
		Date:       m.AttendanceDate,
		Status:     m.AttendanceStatus,
	}
}

func NewAttendanceResponses(ms []aModel.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAttendanceResponse(&ms[i]))
	}
	return out
}
