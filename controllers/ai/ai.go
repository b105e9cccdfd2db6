package aiController

import (
	"fmt"
	"log"
	"strings"

	"padho/database"
	"padho/middleware"
	"padho/models"
	"padho/services/completion"

	"github.com/gofiber/fiber/v2"
)

// LLM is the completion client used by every AI route. Tests swap it for a
// fake; production keeps the resty-backed default.
var LLM = completion.NewClient()

const (
	recommenderSystemMessage = "You are an educational course recommendation assistant. Recommend 5 courses based on user interests."
	tutorSystemMessage       = "You are an educational AI tutor. Help students with their questions. Be concise and clear."
	quizGenSystemMessage     = "You are an educational quiz generator. Generate multiple choice questions from provided content."

	tutorApology     = "Sorry, I'm having trouble responding right now. Please try again later."
	quizGenErrorText = "Error generating quiz. Please try again."
)

// popularCourses is the recommendation fallback: top courses by enrollment
// count. It never fails; a store error degrades to an empty list.
func popularCourses(limit int) []models.Course {
	var courses []models.Course
	if err := database.Database.Db.Order("total_enrollments desc").Limit(limit).Find(&courses).Error; err != nil {
		log.Printf("Error fetching popular courses: %v", err)
		return []models.Course{}
	}
	return courses
}

// GetRecommendations asks the completion service to pick from the not-yet-
// completed courses and maps its free-text reply back onto real records.
// Any failure falls back to the most-enrolled courses; the route never
// reports an error.
func GetRecommendations(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecommendation").(*struct {
		UserInterests    []string `json:"user_interests"`
		CompletedCourses []string `json:"completed_courses"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var allCourses []models.Course
	if err := database.Database.Db.Find(&allCourses).Error; err != nil {
		log.Printf("AI recommendation error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
			"recommendations": popularCourses(5),
		})
	}

	completed := make(map[string]bool, len(reqData.CompletedCourses))
	for _, id := range reqData.CompletedCourses {
		completed[id] = true
	}

	var available []models.Course
	for _, course := range allCourses {
		if !completed[course.ID] {
			available = append(available, course)
		}
	}

	// Nothing left to recommend; skip the remote call entirely
	if len(available) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
			"recommendations": []models.Course{},
		})
	}

	interests := "general learning"
	if len(reqData.UserInterests) > 0 {
		interests = strings.Join(reqData.UserInterests, ", ")
	}

	candidates := available
	if len(candidates) > 20 {
		candidates = candidates[:20]
	}

	var sb strings.Builder
	for _, course := range candidates {
		desc := course.Description
		// Truncate on rune boundaries so multi-byte text stays valid UTF-8
		if runes := []rune(desc); len(runes) > 100 {
			desc = string(runes[:100])
		}
		fmt.Fprintf(&sb, "- %s: %s...\n", course.Title, desc)
	}

	prompt := fmt.Sprintf(
		"User interests: %s\n\nAvailable courses:\n%s\nRecommend 5 courses (just list the course titles, nothing else).",
		interests, sb.String(),
	)

	reply, err := LLM.Complete(recommenderSystemMessage, prompt)
	if err != nil {
		log.Printf("AI recommendation error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
			"recommendations": popularCourses(5),
		})
	}

	titles := make([]string, len(available))
	for i, course := range available {
		titles[i] = course.Title
	}

	recommendations := []models.Course{}
	for _, idx := range completion.MatchTitles(reply, titles, 5) {
		recommendations = append(recommendations, available[idx])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully.", fiber.Map{
		"recommendations": recommendations,
	})
}

// ChatTutor forwards a student question to the completion service. On any
// failure the caller gets a fixed apology, never an error.
func ChatTutor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChat").(*struct {
		Message string `json:"message"`
		Context string `json:"context"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := reqData.Message
	if reqData.Context != "" {
		message = fmt.Sprintf("%s\nContext: %s", reqData.Message, reqData.Context)
	}

	reply, err := LLM.Complete(tutorSystemMessage, message)
	if err != nil {
		log.Printf("AI chat error: %v", err)
		reply = tutorApology
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat response generated.", fiber.Map{
		"response": reply,
	})
}

// GenerateQuiz asks the completion service for questions in a fixed text
// format; failures degrade to a fixed error string.
func GenerateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuizGen").(*struct {
		Content      string `json:"content"`
		NumQuestions int    `json:"num_questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	prompt := fmt.Sprintf(
		"Generate %d multiple choice questions from this content:\n\n%s\n\nFormat each question as:\nQ: [question]\nA) [option]\nB) [option]\nC) [option]\nD) [option]\nCorrect: [A/B/C/D]",
		reqData.NumQuestions, reqData.Content,
	)

	reply, err := LLM.Complete(quizGenSystemMessage, prompt)
	if err != nil {
		log.Printf("Quiz generation error: %v", err)
		reply = quizGenErrorText
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generated.", fiber.Map{
		"generated_quiz": reply,
	})
}
