package blogController

import (
	"encoding/json"
	"log"
	"time"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func GetBlogPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	if err := database.Database.Db.Order("published_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully.", posts)
}

func CreateBlogPost(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedBlogPost").(*struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tags := reqData.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)

	post := models.BlogPost{
		ID:          uuid.NewString(),
		Title:       reqData.Title,
		Content:     reqData.Content,
		AuthorID:    user.ID,
		AuthorName:  user.Name,
		Tags:        datatypes.JSON(tagsJSON),
		PublishedAt: time.Now().UTC(),
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		log.Printf("Error creating blog post: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog post created successfully.", post)
}
