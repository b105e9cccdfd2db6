package reviewController

import (
	"log"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateReview inserts a review and recomputes the course's mean rating and
// rating count over every review for that course, the fresh one included.
// The full re-scan keeps the derived fields exact at O(n) per write.
func CreateReview(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedReview").(*struct {
		CourseID string  `json:"course_id"`
		Rating   float64 `json:"rating"`
		Comment  string  `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if user has already reviewed this course
	var existing models.Review
	if err := db.Where("course_id = ? AND user_id = ?", reqData.CourseID, user.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already reviewed!", nil)
	}

	review := models.Review{
		ID:       uuid.NewString(),
		CourseID: reqData.CourseID,
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Recompute the course's derived rating fields. A failure here leaves
	// the aggregate stale, so it propagates instead of hiding behind a 201.
	var reviews []models.Review
	if err := db.Where("course_id = ?", reqData.CourseID).Find(&reviews).Error; err != nil {
		log.Printf("Error fetching reviews for rating update: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course rating!", nil)
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avgRating := sum / float64(len(reviews))

	if err := db.Model(&models.Course{}).Where("id = ?", reqData.CourseID).
		Updates(map[string]interface{}{
			"rating":        avgRating,
			"total_ratings": len(reviews),
		}).Error; err != nil {
		log.Printf("Error updating course rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully.", review)
}

func GetReviews(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "course_id is required!", nil)
	}

	var reviews []models.Review
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully.", reviews)
}
