package quizController

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

func GetQuizzes(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Quiz{})

	if courseID := c.Query("course_id"); courseID != "" {
		db = db.Where("course_id = ?", courseID)
	}

	var quizzes []models.Quiz
	if err := db.Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
}

func CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*struct {
		CourseID        string `json:"course_id"`
		Title           string `json:"title"`
		Duration        int    `json:"duration"`
		TotalMarks      int    `json:"total_marks"`
		NegativeMarking bool   `json:"negative_marking"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		ID:              uuid.NewString(),
		CourseID:        reqData.CourseID,
		Title:           reqData.Title,
		Duration:        reqData.Duration,
		TotalMarks:      reqData.TotalMarks,
		NegativeMarking: reqData.NegativeMarking,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", quiz)
}

func CreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*struct {
		QuizID        string   `json:"quiz_id"`
		QuestionText  string   `json:"question_text"`
		Type          string   `json:"type"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Marks         int      `json:"marks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options := reqData.Options
	if options == nil {
		options = []string{}
	}
	optionsJSON, _ := json.Marshal(options)

	question := models.Question{
		ID:            uuid.NewString(),
		QuizID:        reqData.QuizID,
		QuestionText:  reqData.QuestionText,
		Type:          reqData.Type,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: reqData.CorrectAnswer,
		Marks:         reqData.Marks,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		log.Printf("Error creating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully.", question)
}

// GetQuizQuestions returns a quiz's questions with correct answers removed.
func GetQuizQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	if err := database.Database.Db.Where("quiz_id = ?", c.Params("id")).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	for i := range questions {
		questions[i].CorrectAnswer = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully.", questions)
}

// scoreQuiz sums marks over the quiz's questions and credits a question's
// marks when the submitted answer matches correct_answer exactly.
// Comparison is case-sensitive; there is no partial credit. A quiz with no
// marks scores zero rather than dividing by it.
func scoreQuiz(questions []models.Question, answers map[string]string) (score float64, earned int, total int) {
	for _, q := range questions {
		total += q.Marks
		if answers[q.ID] == q.CorrectAnswer {
			earned += q.Marks
		}
	}

	if total > 0 {
		score = float64(earned) / float64(total) * 100
	}
	return score, earned, total
}

// SubmitQuiz scores a submission and persists it as a new immutable result.
// Resubmitting the same answers creates another row.
func SubmitQuiz(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		QuizID  string            `json:"quiz_id"`
		Answers map[string]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var questions []models.Question
	if err := db.Where("quiz_id = ?", reqData.QuizID).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	score, earned, total := scoreQuiz(questions, reqData.Answers)

	answersJSON, _ := json.Marshal(reqData.Answers)
	result := models.QuizResult{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		QuizID:      reqData.QuizID,
		Score:       score,
		Answers:     datatypes.JSON(answersJSON),
		CompletedAt: time.Now().UTC(),
	}

	if err := db.Create(&result).Error; err != nil {
		log.Printf("Error saving quiz result: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully.", fiber.Map{
		"score":        score,
		"earned_marks": earned,
		"total_marks":  total,
		"result_id":    result.ID,
	})
}

// GetLeaderboard lists a quiz's results by score descending, each row
// enriched with the submitter's name.
func GetLeaderboard(c *fiber.Ctx) error {
	limit := c.Locals("limit").(int)

	db := database.Database.Db

	var results []models.QuizResult
	if err := db.Where("quiz_id = ?", c.Params("id")).
		Order("score desc").Limit(limit).Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	type leaderboardRow struct {
		models.QuizResult
		UserName string `json:"user_name"`
	}

	rows := make([]leaderboardRow, len(results))
	for i, result := range results {
		userName := "Unknown"
		var user models.User
		if err := db.Where("id = ?", result.UserID).First(&user).Error; err == nil {
			userName = user.Name
		}
		rows[i] = leaderboardRow{QuizResult: result, UserName: userName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully.", rows)
}
