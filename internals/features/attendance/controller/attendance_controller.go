// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aDTO "hrmslite_backend/internals/features/attendance/dto"
	aModel "hrmslite_backend/internals/features/attendance/model"
	eModel "hrmslite_backend/internals/features/employees/model"
	helper "hrmslite_backend/internals/helpers"
)

const maxListRows = 1000

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /attendance
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	var req aDTO.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// urutan cek: employee harus ada dulu (404), baru cek duplikat tanggal (409)
	if err := h.employeeExists(req.EmployeeID); err != nil {
		return err
	}

	var cnt int64
	if err := h.DB.Model(&aModel.AttendanceModel{}).
		Where("attendance_employee_id = ? AND attendance_date = ?", req.EmployeeID, req.Date).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check attendance")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Attendance already marked for this date")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		// backstop unique index (employee_id, date)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Attendance already marked for this date")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return c.Status(fiber.StatusCreated).JSON(aDTO.NewAttendanceResponse(m))
}

// GET /attendance?attendance_date=YYYY-MM-DD
func (h *AttendanceController) List(c *fiber.Ctx) error {
	dbq := h.DB.Model(&aModel.AttendanceModel{})

	if raw := strings.TrimSpace(c.Query("attendance_date")); raw != "" {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid attendance_date, expected YYYY-MM-DD")
		}
		dbq = dbq.Where("attendance_date = ?", raw)
	}

	var rows []aModel.AttendanceModel
	if err := dbq.Limit(maxListRows).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return c.Status(fiber.StatusOK).JSON(aDTO.NewAttendanceResponses(rows))
}

// GET /employees/:employee_id/attendance
func (h *AttendanceController) ListByEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	if err := h.employeeExists(employeeID); err != nil {
		return err
	}

	var rows []aModel.AttendanceModel
	if err := h.DB.
		Where("attendance_employee_id = ?", employeeID).
		Limit(maxListRows).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return c.Status(fiber.StatusOK).JSON(aDTO.NewAttendanceResponses(rows))
}

/* ===================== INTERNAL ===================== */

func (h *AttendanceController) employeeExists(employeeID string) error {
	var cnt int64
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Where("employee_id = ?", employeeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check employee")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Employee not found")
	}
	return nil
}
