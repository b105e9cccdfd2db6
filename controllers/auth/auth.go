package authController

import (
	"encoding/json"
	"log"

	"padho/config"
	"padho/database"
	"padho/middleware"
	"padho/models"
	"padho/services/session"
	"padho/utils"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// setSessionCookie attaches the session token as an HTTP-only, secure,
// cross-site cookie whose max-age matches the session TTL.
func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		ID:           uuid.NewString(),
		Email:        reqData.Email,
		Name:         reqData.Name,
		PasswordHash: string(hashedPassword),
		Role:         reqData.Role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(name, email string) {
		if err := utils.SendWelcomeEmail(name, email); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(newUser.Name, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user_id": newUser.ID,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Accounts created through the identity provider carry no password hash
	// and cannot log in with one.
	if user.PasswordHash == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	s, err := session.Create(db, user.ID)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	setSessionCookie(c, s.SessionToken)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":          user,
		"session_token": s.SessionToken,
	})
}

// GoogleAuth consumes an identity-provider session id, fetches the profile
// from the provider, creates the local user on first sight and mints a local
// session bound to the provider-supplied token value.
func GoogleAuth(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "session_id is required!", nil)
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("X-Session-ID", sessionID).
		Get(config.AppConfig.AuthProviderURL)
	if err != nil || resp.StatusCode() != 200 {
		if err != nil {
			log.Printf("Error calling identity provider: %v", err)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session!", nil)
	}

	var data struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		Picture      string `json:"picture"`
		SessionToken string `json:"session_token"`
	}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		log.Printf("Error parsing identity provider response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", data.Email).First(&user).Error; err != nil {
		user = models.User{
			ID:      uuid.NewString(),
			Email:   data.Email,
			Name:    data.Name,
			Picture: data.Picture,
			Role:    models.RoleStudent,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user from identity provider: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
	}

	s, err := session.CreateWithToken(db, user.ID, data.SessionToken)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	setSessionCookie(c, s.SessionToken)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":          user,
		"session_token": s.SessionToken,
	})
}

func Me(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

func Logout(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)
	if token != "" {
		session.Revoke(database.Database.Db, token)
	}

	clearSessionCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}
