package courseRoutes

import (
	courseControllers "padho/controllers/course"
	"padho/middleware"
	courseValidators "padho/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", courseControllers.GetCourses)
	courseGroup.Get("/:id", courseControllers.GetCourse)
	courseGroup.Post("/", middleware.RequireRole("instructor", "admin"), courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.RequireRole("instructor", "admin"), courseValidators.CreateCourse(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.RequireRole("instructor", "admin"), courseControllers.DeleteCourse)

	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Post("/", middleware.RequireAuth, courseValidators.CourseIDQuery(), courseControllers.EnrollInCourse)
	enrollmentGroup.Get("/my", middleware.RequireAuth, courseControllers.GetMyEnrollments)
	enrollmentGroup.Put("/:id/progress", middleware.RequireAuth, courseValidators.UpdateProgress(), courseControllers.UpdateProgress)

	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Get("/", courseControllers.GetLessons)
	lessonGroup.Post("/", middleware.RequireRole("instructor", "admin"), courseValidators.CreateLesson(), courseControllers.CreateLesson)

	materialGroup := app.Group("/api/study-materials")

	materialGroup.Get("/", courseControllers.GetStudyMaterials)
	materialGroup.Post("/", middleware.RequireRole("instructor", "admin"), courseValidators.UploadMaterial(), courseControllers.UploadStudyMaterial)
	materialGroup.Get("/:id", middleware.RequireAuth, courseControllers.DownloadStudyMaterial)

	certificateGroup := app.Group("/api/certificates")

	certificateGroup.Post("/", middleware.RequireAuth, courseValidators.CourseIDQuery(), courseControllers.GenerateCertificate)
	certificateGroup.Get("/my", middleware.RequireAuth, courseControllers.GetMyCertificates)
}
