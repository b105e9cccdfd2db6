package dashboardController

import (
	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
)

func StudentDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", user.ID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	courseIDs := make([]string, 0, len(enrollments))
	completedCourses := 0
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
		if e.Progress >= 100 {
			completedCourses++
		}
	}

	var courses []models.Course
	if len(courseIDs) > 0 {
		db.Where("id IN ?", courseIDs).Find(&courses)
	}

	var quizResults []models.QuizResult
	db.Where("user_id = ?", user.ID).Find(&quizResults)

	var certificates []models.Certificate
	db.Where("user_id = ?", user.ID).Find(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"enrollments":       enrollments,
		"courses":           courses,
		"quiz_results":      quizResults,
		"certificates":      certificates,
		"total_courses":     len(courses),
		"completed_courses": completedCourses,
	})
}

func InstructorDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var courses []models.Course
	if err := database.Database.Db.Where("instructor_id = ?", user.ID).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	totalEnrollments := 0
	for _, course := range courses {
		totalEnrollments += course.TotalEnrollments
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"courses":           courses,
		"total_courses":     len(courses),
		"total_enrollments": totalEnrollments,
	})
}

func AdminDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalEnrollments, totalQuizzes int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"total_users":       totalUsers,
		"total_courses":     totalCourses,
		"total_enrollments": totalEnrollments,
		"total_quizzes":     totalQuizzes,
	})
}
