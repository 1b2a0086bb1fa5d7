// internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	// Weak reference ke employees.employee_id (dicek saat insert, cascade saat delete employee)
	AttendanceEmployeeID string `gorm:"type:varchar(50);not null;uniqueIndex:uq_attendance_employee_date;column:attendance_employee_id" json:"attendance_employee_id"`

	// Disimpan sebagai string ISO-8601 (YYYY-MM-DD), bukan tipe date native
	AttendanceDate string `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date;column:attendance_date" json:"attendance_date"`

	// Free-form: "Present" / "Absent" yang diharapkan, tapi string apa pun diterima
	AttendanceStatus string `gorm:"type:varchar(30);not null;column:attendance_status" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
