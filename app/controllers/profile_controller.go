package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/usercontext"
)

// HandleProfile shows the signed-in account; the user context
// middleware already fetched it for this request.
func HandleProfile(c *fiber.Ctx) error {
	user := usercontext.GetUserContext(c)
	return render(c, "profile/index", "My profile", fiber.Map{
		"Profile": user,
	})
}

func HandleProfileUpdate(c *fiber.Ctx) error {
	payload := fiber.Map{
		"first_name": c.FormValue("first_name"),
		"last_name":  c.FormValue("last_name"),
	}

	fm := fiber.Map{"type": "error"}

	if err := call(c, fiber.MethodPut, "/v1/auth/me", "", payload, nil, "Failed to update profile"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.ProfileRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Profile updated"}
	return flash.WithSuccess(c, fm).Redirect(constants.ProfileRoute)
}
