package dashboardController

import (
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

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		Name:  "Dash User",
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)

	s, err := session.Create(db, user.ID)
	require.NoError(t, err)
	return user, s.SessionToken
}

func newTestApp() *fiber.App {
	app := fiber.New()

	app.Get("/api/dashboard/student", middleware.RequireAuth, StudentDashboard)
	app.Get("/api/dashboard/instructor", middleware.RequireRole("instructor", "admin"), InstructorDashboard)
	app.Get("/api/dashboard/admin", middleware.RequireRole("admin"), AdminDashboard)

	return app
}

func getDashboard(t *testing.T, app *fiber.App, target, token string) (int, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env.Data
}

func TestStudentDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	user, token := createUserWithSession(t, db, models.RoleStudent)
	app := newTestApp()

	done := models.Course{ID: uuid.NewString(), Title: "Done", InstructorID: uuid.NewString()}
	active := models.Course{ID: uuid.NewString(), Title: "Active", InstructorID: uuid.NewString()}
	require.NoError(t, db.Create(&done).Error)
	require.NoError(t, db.Create(&active).Error)

	require.NoError(t, db.Create(&models.Enrollment{
		ID: uuid.NewString(), UserID: user.ID, CourseID: done.ID, Progress: 100,
	}).Error)
	require.NoError(t, db.Create(&models.Enrollment{
		ID: uuid.NewString(), UserID: user.ID, CourseID: active.ID, Progress: 30,
	}).Error)

	status, data := getDashboard(t, app, "/api/dashboard/student", token)
	require.Equal(t, http.StatusOK, status)

	var totalCourses, completedCourses int
	require.NoError(t, json.Unmarshal(data["total_courses"], &totalCourses))
	require.NoError(t, json.Unmarshal(data["completed_courses"], &completedCourses))
	assert.Equal(t, 2, totalCourses)
	assert.Equal(t, 1, completedCourses)
}

func TestInstructorDashboardTotals(t *testing.T) {
	db := setupTestDB(t)
	instructor, token := createUserWithSession(t, db, models.RoleInstructor)
	app := newTestApp()

	require.NoError(t, db.Create(&models.Course{
		ID: uuid.NewString(), Title: "Mine A", InstructorID: instructor.ID, TotalEnrollments: 3,
	}).Error)
	require.NoError(t, db.Create(&models.Course{
		ID: uuid.NewString(), Title: "Mine B", InstructorID: instructor.ID, TotalEnrollments: 7,
	}).Error)
	require.NoError(t, db.Create(&models.Course{
		ID: uuid.NewString(), Title: "Not Mine", InstructorID: uuid.NewString(), TotalEnrollments: 99,
	}).Error)

	status, data := getDashboard(t, app, "/api/dashboard/instructor", token)
	require.Equal(t, http.StatusOK, status)

	var totalCourses, totalEnrollments int
	require.NoError(t, json.Unmarshal(data["total_courses"], &totalCourses))
	require.NoError(t, json.Unmarshal(data["total_enrollments"], &totalEnrollments))
	assert.Equal(t, 2, totalCourses)
	assert.Equal(t, 10, totalEnrollments)
}

func TestAdminDashboardRestricted(t *testing.T) {
	db := setupTestDB(t)
	_, studentToken := createUserWithSession(t, db, models.RoleStudent)
	_, instructorToken := createUserWithSession(t, db, models.RoleInstructor)
	_, adminToken := createUserWithSession(t, db, models.RoleAdmin)
	app := newTestApp()

	status, _ := getDashboard(t, app, "/api/dashboard/admin", studentToken)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = getDashboard(t, app, "/api/dashboard/admin", instructorToken)
	assert.Equal(t, http.StatusForbidden, status)

	status, data := getDashboard(t, app, "/api/dashboard/admin", adminToken)
	require.Equal(t, http.StatusOK, status)

	var totalUsers int64
	require.NoError(t, json.Unmarshal(data["total_users"], &totalUsers))
	assert.Equal(t, int64(3), totalUsers)
}
