// internals/features/employees/route/employee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eCtrl "hrmslite_backend/internals/features/employees/controller"
)

func EmployeeRoutes(r fiber.Router, db *gorm.DB) {
	h := eCtrl.NewEmployeeController(db)

	g := r.Group("/employees")
	g.Post("/", h.Create)                 // tambah employee
	g.Get("/", h.List)                    // list + total_present_days
	g.Delete("/:employee_id", h.Delete)   // hapus + cascade attendance
}
