// internals/features/employees/model/employee_model.go
package model

import (
	"time"
)

type EmployeeModel struct {
	// Identifier bisnis sekaligus PK (immutable, tidak ada update)
	EmployeeID string `gorm:"type:varchar(50);primaryKey;column:employee_id" json:"employee_id"`

	EmployeeName       string `gorm:"type:varchar(100);not null;column:employee_name" json:"employee_name"`
	EmployeeEmail      string `gorm:"type:varchar(120);uniqueIndex:uq_employees_email;not null;column:employee_email" json:"employee_email"`
	EmployeeDepartment string `gorm:"type:varchar(100);not null;column:employee_department" json:"employee_department"`

	EmployeeCreatedAt time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
