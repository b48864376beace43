package controllers

import (
	"encoding/json"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{"type": "error"}

		body, err := json.Marshal(fiber.Map{
			"email":    c.FormValue("email"),
			"password": c.FormValue("password"),
		})
		if err != nil {
			fm["message"] = "Internal server error"
			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		res, err := gateway.Default().Do(fiber.MethodPost, "/v1/auth/login", "", "", body)
		if err != nil {
			log.Printf("Login error: %v", err)
			fm["message"] = "Internal server error"
			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		if !res.OK() {
			fm["message"] = gateway.Message(res.Body, "Login failed")
			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		var payload struct {
			AccessToken string `json:"access_token"`
		}
		if err := res.JSON(&payload); err != nil || payload.AccessToken == "" {
			fm["message"] = "Login failed"
			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		session.Set(c, payload.AccessToken)

		fm = fiber.Map{
			"type":    "success",
			"message": "Login successful",
		}
		return flash.WithSuccess(c, fm).Redirect(constants.DashboardRoute)
	}

	return render(c, "auth/login", "Sign in", nil)
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{"type": "error"}

		body, err := json.Marshal(fiber.Map{
			"email":      c.FormValue("email"),
			"password":   c.FormValue("password"),
			"first_name": c.FormValue("first_name"),
			"last_name":  c.FormValue("last_name"),
		})
		if err != nil {
			fm["message"] = "Internal server error"
			return flash.WithError(c, fm).Redirect(constants.RegisterRoute)
		}

		res, err := gateway.Default().Do(fiber.MethodPost, "/v1/auth/register", "", "", body)
		if err != nil {
			log.Printf("Register error: %v", err)
			fm["message"] = "Internal server error"
			return flash.WithError(c, fm).Redirect(constants.RegisterRoute)
		}

		if !res.OK() {
			fm["message"] = gateway.Message(res.Body, "Registration failed")
			return flash.WithError(c, fm).Redirect(constants.RegisterRoute)
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Registration successful! Please check your e-mail to verify your account.",
		}
		return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
	}

	return render(c, "auth/register", "Create account", nil)
}

func HandleAuthLogout(c *fiber.Ctx) error {
	if token := session.Token(c); token != "" {
		if _, err := gateway.Default().Do(fiber.MethodPost, "/v1/auth/revoke-token", "", token, nil); err != nil {
			log.Printf("Logout revoke error: %v", err)
		}
	}

	session.Clear(c)

	fm := fiber.Map{
		"type":    "success",
		"message": "Logged out successfully",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
}

// HandleVerifyEmail runs the verification token against the backend and
// renders the outcome. "Already verified" counts as success.
func HandleVerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return render(c, "auth/verify_email", "Verify e-mail", fiber.Map{
			"Success": false,
			"Message": "Missing verification token",
		})
	}

	query := url.Values{"token": {token}, "mode": {"json"}}
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/auth/verify-email", query.Encode(), "", nil)
	if err != nil {
		log.Printf("Verify email error: %v", err)
		return render(c, "auth/verify_email", "Verify e-mail", fiber.Map{
			"Success": false,
			"Message": "Internal server error",
		})
	}

	if res.OK() {
		var payload struct {
			Status string `json:"status"`
		}
		_ = res.JSON(&payload)
		message := "Email verified successfully."
		if payload.Status == "already_verified" {
			message = "Email is already verified."
		}
		return render(c, "auth/verify_email", "Verify e-mail", fiber.Map{
			"Success": true,
			"Message": message,
		})
	}

	return render(c, "auth/verify_email", "Verify e-mail", fiber.Map{
		"Success": false,
		"Message": gateway.Message(res.Body, "Verification failed. The token may be invalid or expired."),
	})
}

// HandleSetupAccount validates the invitation token and renders the
// password form. A token whose message says it has already been used
// gets its own screen instead of an error.
func HandleSetupAccount(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return render(c, "auth/setup_account", "Set up account", fiber.Map{
			"Error": "Missing invitation token",
		})
	}

	body, _ := json.Marshal(fiber.Map{"token": token})
	res, err := gateway.Default().Do(fiber.MethodPost, "/v1/tenants/validate-token", "", "", body)
	if err != nil {
		log.Printf("Validate token error: %v", err)
		return render(c, "auth/setup_account", "Set up account", fiber.Map{
			"Error": "Internal server error",
		})
	}

	if !res.OK() {
		message := gateway.Message(res.Body, "Failed to validate token")
		if strings.Contains(message, "already been used") {
			return render(c, "auth/setup_account", "Set up account", fiber.Map{
				"AlreadySetup": true,
			})
		}
		return render(c, "auth/setup_account", "Set up account", fiber.Map{
			"Error": message,
		})
	}

	var payload struct {
		Email string `json:"email"`
	}
	_ = res.JSON(&payload)

	return render(c, "auth/setup_account", "Set up account", fiber.Map{
		"Token": token,
		"Email": payload.Email,
	})
}

func HandleSetupAccountSubmit(c *fiber.Ctx) error {
	token := c.FormValue("token")
	password := c.FormValue("password")
	confirm := c.FormValue("password_confirm")
	target := constants.SetupAccountRoute + "?token=" + url.QueryEscape(token)

	if password == "" || password != confirm {
		fm := fiber.Map{
			"type":    "error",
			"message": "Passwords do not match",
		}
		return flash.WithError(c, fm).Redirect(target)
	}

	body, _ := json.Marshal(fiber.Map{
		"token":    token,
		"password": password,
	})
	res, err := gateway.Default().Do(fiber.MethodPost, "/v1/tenants/setup-tenant-user", "", "", body)
	if err != nil {
		log.Printf("Setup tenant user error: %v", err)
		fm := fiber.Map{"type": "error", "message": "Internal server error"}
		return flash.WithError(c, fm).Redirect(target)
	}

	if !res.OK() {
		message := gateway.Message(res.Body, "Failed to set up account")
		if strings.Contains(message, "already been used") {
			return render(c, "auth/setup_account", "Set up account", fiber.Map{
				"AlreadySetup": true,
			})
		}
		fm := fiber.Map{"type": "error", "message": message}
		return flash.WithError(c, fm).Redirect(target)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Your account is ready. You can sign in now.",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
}
