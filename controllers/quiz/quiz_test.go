package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"padho/database"
	"padho/middleware"
	"padho/models"
	"padho/services/session"
	quizValidator "padho/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}
	return db
}

func createUserWithSession(t *testing.T, db *gorm.DB, role string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		ID:    uuid.NewString(),
		Email: uuid.NewString() + "@example.com",
		Name:  "Quiz Taker",
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)

	s, err := session.Create(db, user.ID)
	require.NoError(t, err)
	return user, s.SessionToken
}

func newTestApp() *fiber.App {
	app := fiber.New()

	app.Get("/api/quizzes", GetQuizzes)
	app.Post("/api/quizzes", middleware.RequireRole("instructor", "admin"), quizValidator.CreateQuiz(), CreateQuiz)
	app.Get("/api/quizzes/:id/questions", middleware.RequireAuth, GetQuizQuestions)
	app.Post("/api/quizzes/submit", middleware.RequireAuth, quizValidator.SubmitQuiz(), SubmitQuiz)
	app.Get("/api/quizzes/:id/leaderboard", quizValidator.Leaderboard(), GetLeaderboard)

	return app
}

func question(quizID, text, answer string, marks int) models.Question {
	options, _ := json.Marshal([]string{"a", "b", "c", "d"})
	return models.Question{
		ID:            uuid.NewString(),
		QuizID:        quizID,
		QuestionText:  text,
		Type:          "mcq",
		Options:       datatypes.JSON(options),
		CorrectAnswer: answer,
		Marks:         marks,
	}
}

func TestCreateQuizWithoutCourse(t *testing.T) {
	db := setupTestDB(t)
	_, token := createUserWithSession(t, db, models.RoleInstructor)
	app := newTestApp()

	// Quizzes are not required to belong to a course
	body, _ := json.Marshal(fiber.Map{"title": "Standalone Quiz"})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var quiz models.Quiz
	require.NoError(t, db.Where("title = ?", "Standalone Quiz").First(&quiz).Error)
	assert.Empty(t, quiz.CourseID)
	assert.Equal(t, 30, quiz.Duration)
	assert.Equal(t, 100, quiz.TotalMarks)
}

func TestCreateQuizRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	_, token := createUserWithSession(t, db, models.RoleInstructor)
	app := newTestApp()

	body, _ := json.Marshal(fiber.Map{"course_id": uuid.NewString()})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestScoreQuizAllCorrect(t *testing.T) {
	questions := []models.Question{
		question("q", "1+1?", "2", 5),
		question("q", "2+2?", "4", 5),
	}
	answers := map[string]string{
		questions[0].ID: "2",
		questions[1].ID: "4",
	}

	score, earned, total := scoreQuiz(questions, answers)

	assert.Equal(t, 100.0, score)
	assert.Equal(t, 10, earned)
	assert.Equal(t, 10, total)
}

func TestScoreQuizPartial(t *testing.T) {
	questions := []models.Question{
		question("q", "first", "a", 5),
		question("q", "second", "b", 5),
	}
	answers := map[string]string{
		questions[0].ID: "a",
		questions[1].ID: "wrong",
	}

	score, earned, total := scoreQuiz(questions, answers)

	assert.Equal(t, 50.0, score)
	assert.Equal(t, 5, earned)
	assert.Equal(t, 10, total)
}

func TestScoreQuizCaseSensitive(t *testing.T) {
	questions := []models.Question{question("q", "letter?", "a", 1)}

	score, earned, _ := scoreQuiz(questions, map[string]string{questions[0].ID: "A"})

	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, earned)
}

func TestScoreQuizMissingAnswers(t *testing.T) {
	questions := []models.Question{question("q", "unanswered", "x", 3)}

	score, earned, total := scoreQuiz(questions, map[string]string{})

	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, earned)
	assert.Equal(t, 3, total)
}

func TestScoreQuizNoQuestions(t *testing.T) {
	score, earned, total := scoreQuiz(nil, map[string]string{"x": "y"})

	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, earned)
	assert.Equal(t, 0, total)
}

func TestScoreQuizWeightedMarks(t *testing.T) {
	questions := []models.Question{
		question("q", "easy", "a", 1),
		question("q", "hard", "b", 9),
	}

	score, earned, total := scoreQuiz(questions, map[string]string{questions[1].ID: "b"})

	assert.Equal(t, 90.0, score)
	assert.Equal(t, 9, earned)
	assert.Equal(t, 10, total)
}

func TestSubmitQuizPersistsResult(t *testing.T) {
	db := setupTestDB(t)
	_, token := createUserWithSession(t, db, models.RoleStudent)
	app := newTestApp()

	quiz := models.Quiz{ID: uuid.NewString(), CourseID: uuid.NewString(), Title: "Basics"}
	require.NoError(t, db.Create(&quiz).Error)

	q1 := question(quiz.ID, "1+1?", "2", 5)
	q2 := question(quiz.ID, "2+2?", "4", 5)
	require.NoError(t, db.Create(&q1).Error)
	require.NoError(t, db.Create(&q2).Error)

	body, _ := json.Marshal(fiber.Map{
		"quiz_id": quiz.ID,
		"answers": map[string]string{q1.ID: "2", q2.ID: "5"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Data struct {
			Score       float64 `json:"score"`
			EarnedMarks int     `json:"earned_marks"`
			TotalMarks  int     `json:"total_marks"`
			ResultID    string  `json:"result_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, 50.0, env.Data.Score)
	assert.Equal(t, 5, env.Data.EarnedMarks)
	assert.Equal(t, 10, env.Data.TotalMarks)

	var result models.QuizResult
	require.NoError(t, db.Where("id = ?", env.Data.ResultID).First(&result).Error)
	assert.Equal(t, 50.0, result.Score)
}

func TestSubmitQuizTwiceKeepsBothResults(t *testing.T) {
	db := setupTestDB(t)
	_, token := createUserWithSession(t, db, models.RoleStudent)
	app := newTestApp()

	quiz := models.Quiz{ID: uuid.NewString(), CourseID: uuid.NewString(), Title: "Retakes"}
	require.NoError(t, db.Create(&quiz).Error)

	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(fiber.Map{"quiz_id": quiz.ID, "answers": map[string]string{}})
		req := httptest.NewRequest(http.MethodPost, "/api/quizzes/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	db.Model(&models.QuizResult{}).Where("quiz_id = ?", quiz.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestGetQuizQuestionsHidesAnswers(t *testing.T) {
	db := setupTestDB(t)
	_, token := createUserWithSession(t, db, models.RoleStudent)
	app := newTestApp()

	quiz := models.Quiz{ID: uuid.NewString(), CourseID: uuid.NewString(), Title: "Hidden"}
	require.NoError(t, db.Create(&quiz).Error)

	q := question(quiz.ID, "secret?", "the-answer", 1)
	require.NoError(t, db.Create(&q).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quiz.ID+"/questions", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "the-answer")
}

func TestLeaderboardOrdersByScore(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()

	quizID := uuid.NewString()
	scores := []float64{40, 90, 70}
	for _, s := range scores {
		user := models.User{ID: uuid.NewString(), Email: uuid.NewString() + "@example.com", Name: "U", Role: models.RoleStudent}
		require.NoError(t, db.Create(&user).Error)

		answers, _ := json.Marshal(map[string]string{})
		result := models.QuizResult{
			ID:      uuid.NewString(),
			UserID:  user.ID,
			QuizID:  quizID,
			Score:   s,
			Answers: datatypes.JSON(answers),
		}
		require.NoError(t, db.Create(&result).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID+"/leaderboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Data []struct {
			Score    float64 `json:"score"`
			UserName string  `json:"user_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Len(t, env.Data, 3)
	assert.Equal(t, 90.0, env.Data[0].Score)
	assert.Equal(t, 70.0, env.Data[1].Score)
	assert.Equal(t, 40.0, env.Data[2].Score)
}

func TestLeaderboardLimit(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp()

	quizID := uuid.NewString()
	for i := 0; i < 15; i++ {
		answers, _ := json.Marshal(map[string]string{})
		result := models.QuizResult{
			ID:      uuid.NewString(),
			UserID:  uuid.NewString(),
			QuizID:  quizID,
			Score:   float64(i),
			Answers: datatypes.JSON(answers),
		}
		require.NoError(t, db.Create(&result).Error)
	}

	// Default limit is 10
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID+"/leaderboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Len(t, env.Data, 10)

	req = httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID+"/leaderboard?limit=3", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Len(t, env.Data, 3)
}
