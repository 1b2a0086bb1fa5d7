// internals/features/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aModel "hrmslite_backend/internals/features/attendance/model"
	eDTO "hrmslite_backend/internals/features/employees/dto"
	eModel "hrmslite_backend/internals/features/employees/model"
	helper "hrmslite_backend/internals/helpers"
)

// Cap hasil listing, selaras dengan batas 1000 record API lama
const maxListRows = 1000

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req eDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// dua cek unik terpisah: employee_id dulu, lalu email
	var cnt int64
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Where("employee_id = ?", req.EmployeeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check employee ID")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Employee ID already exists")
	}

	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Where("employee_email = ?", req.Email).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email already registered")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		// backstop unique index kalau dua request lolos pre-check bersamaan
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Employee ID or email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create employee")
	}

	return c.Status(fiber.StatusCreated).JSON(eDTO.NewEmployeeResponse(m))
}

// GET /employees
func (h *EmployeeController) List(c *fiber.Ctx) error {
	rows := make([]eDTO.EmployeeWithStatsResponse, 0, 16)

	// satu query join + agregasi; alias kolom mengikuti field response
	err := h.DB.Table("employees").
		Select(`employees.employee_id AS employee_id,
			employees.employee_name AS name,
			employees.employee_email AS email,
			employees.employee_department AS department,
			COALESCE(SUM(CASE WHEN attendance.attendance_status = 'Present' THEN 1 ELSE 0 END), 0) AS total_present_days`).
		Joins("LEFT JOIN attendance ON attendance.attendance_employee_id = employees.employee_id").
		Group("employees.employee_id").
		Limit(maxListRows).
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// DELETE /employees/:employee_id
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	res := h.DB.Delete(&eModel.EmployeeModel{}, "employee_id = ?", employeeID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete employee")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Employee not found")
	}

	// cascade ke attendance; sengaja di luar transaksi (limitasi yang diterima:
	// crash di antara dua delete meninggalkan record yatim)
	if err := h.DB.Delete(&aModel.AttendanceModel{}, "attendance_employee_id = ?", employeeID).Error; err != nil {
		// primary delete sudah sukses; cascade gagal hanya dicatat
		log.Printf("[WARN] cascade delete attendance employee_id=%s err=%v", employeeID, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
