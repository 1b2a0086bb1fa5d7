// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "hrmslite_backend/internals/features/attendance/route"
	employeeRoute "hrmslite_backend/internals/features/employees/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ROOT =====================
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to HRMS Lite API",
		})
	})

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Employee routes...")
	employeeRoute.EmployeeRoutes(app, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(app, db)
}
