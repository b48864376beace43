package controllers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/app/models"
	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

func fetchTenants(c *fiber.Ctx) ([]models.Tenant, error) {
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/tenants/admin/tenants", "", session.Token(c), nil)
	if err != nil {
		return nil, errInternal("Failed to fetch tenants", err)
	}
	if !res.OK() {
		return nil, errUpstream(res, "Failed to fetch tenants")
	}

	var tenants []models.Tenant
	if err := decodeList(json.RawMessage(res.Body), &tenants); err != nil {
		return nil, errInternal("Failed to fetch tenants", err)
	}
	return tenants, nil
}

func fetchAccounts(c *fiber.Ctx) ([]models.Account, error) {
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/auth/accounts", "", session.Token(c), nil)
	if err != nil {
		return nil, errInternal("Failed to fetch accounts", err)
	}
	if !res.OK() {
		return nil, errUpstream(res, "Failed to fetch accounts")
	}

	var accounts []models.Account
	if err := decodeList(json.RawMessage(res.Body), &accounts); err != nil {
		return nil, errInternal("Failed to fetch accounts", err)
	}
	return accounts, nil
}

// HandleTenants lists workspaces with the search/status filters applied
// on the fetched snapshot; the view is discarded and refetched on every
// navigation.
func HandleTenants(c *fiber.Ctx) error {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	status := c.Query("status")

	tenants, err := fetchTenants(c)
	if err != nil {
		return render(c, "tenants/index", "Tenants", fiber.Map{"Error": err.Error()})
	}

	filtered := make([]models.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		if status != "" && status != "all" && t.Status != status {
			continue
		}
		filtered = append(filtered, t)
	}

	return render(c, "tenants/index", "Tenants", fiber.Map{
		"Tenants": filtered,
		"Search":  c.Query("search"),
		"Status":  status,
	})
}

func HandleTenantNew(c *fiber.Ctx) error {
	accounts, err := fetchAccounts(c)
	if err != nil {
		// The owner dropdown is optional; the form still works without it.
		accounts = nil
	}

	return render(c, "tenants/form", "New tenant", fiber.Map{
		"Tenant":   models.Tenant{Status: models.TENANT_STATUS_PENDING, Plan: "trial"},
		"Accounts": accounts,
		"IsEdit":   false,
	})
}

func HandleTenantCreate(c *fiber.Ctx) error {
	payload := models.TenantCreate{
		Name:           c.FormValue("name"),
		OwnerAccountID: c.FormValue("owner_account_id"),
		Status:         c.FormValue("status"),
		Plan:           c.FormValue("plan"),
	}

	fm := fiber.Map{"type": "error"}

	if err := payload.Validate(); err != nil {
		fm["message"] = "Please check the tenant form: " + err.Error()
		return flash.WithError(c, fm).Redirect(constants.TenantsRoute + "/new")
	}

	if err := call(c, fiber.MethodPost, "/v1/tenants", "", payload, nil, "Failed to create tenant"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.TenantsRoute + "/new")
	}

	fm = fiber.Map{"type": "success", "message": "Tenant created"}
	return flash.WithSuccess(c, fm).Redirect(constants.TenantsRoute)
}

func HandleTenantEdit(c *fiber.Ctx) error {
	id := c.Params("id")

	var tenant models.Tenant
	if err := call(c, fiber.MethodGet, "/v1/tenants/"+id, "", nil, &tenant, "Failed to fetch tenant"); err != nil {
		return render(c, "tenants/form", "Edit tenant", fiber.Map{"Error": err.Error(), "IsEdit": true})
	}

	accounts, err := fetchAccounts(c)
	if err != nil {
		accounts = nil
	}

	return render(c, "tenants/form", "Edit tenant", fiber.Map{
		"Tenant":   tenant,
		"Accounts": accounts,
		"IsEdit":   true,
	})
}

func HandleTenantUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	editRoute := constants.TenantsRoute + "/" + id + "/edit"

	payload := models.TenantUpdate{
		Name:           c.FormValue("name"),
		OwnerAccountID: c.FormValue("owner_account_id"),
		Status:         c.FormValue("status"),
		Plan:           c.FormValue("plan"),
	}

	fm := fiber.Map{"type": "error"}

	if err := payload.Validate(); err != nil {
		fm["message"] = "Please check the tenant form: " + err.Error()
		return flash.WithError(c, fm).Redirect(editRoute)
	}

	if err := call(c, fiber.MethodPut, "/v1/tenants/"+id, "", payload, nil, "Failed to update tenant"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(editRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Tenant updated"}
	return flash.WithSuccess(c, fm).Redirect(constants.TenantsRoute)
}

func HandleTenantUsers(c *fiber.Ctx) error {
	id := c.Params("id")

	var tenant models.Tenant
	if err := call(c, fiber.MethodGet, "/v1/tenants/"+id, "", nil, &tenant, "Failed to fetch tenant"); err != nil {
		return render(c, "tenants/users", "Tenant users", fiber.Map{"Error": err.Error()})
	}

	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/tenants/tenants/"+id+"/users", "", session.Token(c), nil)
	if err != nil {
		return render(c, "tenants/users", "Tenant users", fiber.Map{
			"Error":  "Failed to fetch tenant users",
			"Tenant": tenant,
		})
	}
	if !res.OK() {
		return render(c, "tenants/users", "Tenant users", fiber.Map{
			"Error":  gateway.Message(res.Body, "Failed to fetch tenant users"),
			"Tenant": tenant,
		})
	}

	var users []models.TenantUser
	if err := decodeList(json.RawMessage(res.Body), &users); err != nil {
		return render(c, "tenants/users", "Tenant users", fiber.Map{
			"Error":  "Failed to fetch tenant users",
			"Tenant": tenant,
		})
	}

	return render(c, "tenants/users", "Tenant users", fiber.Map{
		"Tenant": tenant,
		"Users":  users,
	})
}

func HandleTenantUserInvite(c *fiber.Ctx) error {
	id := c.Params("id")
	usersRoute := constants.TenantsRoute + "/" + id + "/users"

	payload := models.TenantUserInvite{
		Email: c.FormValue("email"),
		Role:  c.FormValue("role"),
	}

	fm := fiber.Map{"type": "error"}

	if err := payload.Validate(); err != nil {
		fm["message"] = "Please enter a valid e-mail address and role"
		return flash.WithError(c, fm).Redirect(usersRoute)
	}

	if err := call(c, fiber.MethodPost, "/v1/tenants/"+id+"/invite", "", payload, nil, "Failed to invite tenant user"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(usersRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Invitation sent to " + payload.Email}
	return flash.WithSuccess(c, fm).Redirect(usersRoute)
}

// HandleTenantChatbot renders the widget configuration with upsert
// semantics: a tenant without a saved config gets the defaults.
func HandleTenantChatbot(c *fiber.Ctx) error {
	id := c.Params("id")

	var tenant models.Tenant
	if err := call(c, fiber.MethodGet, "/v1/tenants/"+id, "", nil, &tenant, "Failed to fetch tenant"); err != nil {
		return render(c, "tenants/chatbot", "Chatbot", fiber.Map{"Error": err.Error()})
	}

	config := models.DefaultChatbotConfig()
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/tenants/"+id+"/chatbot", "", session.Token(c), nil)
	if err == nil && res.OK() {
		_ = res.JSON(&config)
		config.ApplyDefaults()
	}

	return render(c, "tenants/chatbot", "Chatbot", fiber.Map{
		"Tenant":           tenant,
		"Config":           config,
		"PublicBackendURL": gateway.PublicBaseURL(),
	})
}

func HandleTenantChatbotSave(c *fiber.Ctx) error {
	id := c.Params("id")
	chatbotRoute := constants.TenantsRoute + "/" + id + "/chatbot"

	payload := models.ChatbotConfig{
		Name:            c.FormValue("name"),
		WelcomeMessage:  c.FormValue("welcome_message"),
		IsActive:        c.FormValue("is_active") == "on",
		PrimaryColor:    c.FormValue("primary_color"),
		BackgroundColor: c.FormValue("background_color"),
		LogoURL:         c.FormValue("logo_url"),
		Position:        c.FormValue("position"),
	}
	payload.ApplyDefaults()

	fm := fiber.Map{"type": "error"}

	if err := call(c, fiber.MethodPut, "/v1/tenants/"+id+"/chatbot", "", payload, nil, "Failed to update chatbot config"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(chatbotRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Chatbot configuration saved"}
	return flash.WithSuccess(c, fm).Redirect(chatbotRoute)
}
