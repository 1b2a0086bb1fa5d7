// internals/features/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "hrmslite_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	h := aCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Post("/", h.Mark) // mark harian
	g.Get("/", h.List)  // list semua / filter ?attendance_date=

	// nested di bawah employees
	r.Get("/employees/:employee_id/attendance", h.ListByEmployee)
}
