package models

const (
	CHATBOT_POSITION_BOTTOM_RIGHT = "bottom-right"
	CHATBOT_POSITION_BOTTOM_LEFT  = "bottom-left"
)

// ChatbotConfig is the widget configuration for one tenant. Upsert
// semantics: ID is empty until the first save, which never blocks
// editing.
type ChatbotConfig struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	WelcomeMessage  string `json:"welcome_message"`
	IsActive        bool   `json:"is_active"`
	PrimaryColor    string `json:"primary_color"`
	BackgroundColor string `json:"background_color"`
	LogoURL         string `json:"logo_url,omitempty"`
	Position        string `json:"position"`
}

// DefaultChatbotConfig is the editing seed used before a tenant's first
// save.
func DefaultChatbotConfig() ChatbotConfig {
	return ChatbotConfig{
		Name:            "Support Assistant",
		WelcomeMessage:  "Hi! How can I help you today?",
		IsActive:        true,
		PrimaryColor:    "#2563eb",
		BackgroundColor: "#ffffff",
		Position:        CHATBOT_POSITION_BOTTOM_RIGHT,
	}
}

// ApplyDefaults fills unset fields after a fetch so a half-saved config
// still renders a complete form.
func (cc *ChatbotConfig) ApplyDefaults() {
	def := DefaultChatbotConfig()
	if cc.Name == "" {
		cc.Name = def.Name
	}
	if cc.WelcomeMessage == "" {
		cc.WelcomeMessage = def.WelcomeMessage
	}
	if cc.PrimaryColor == "" {
		cc.PrimaryColor = def.PrimaryColor
	}
	if cc.BackgroundColor == "" {
		cc.BackgroundColor = def.BackgroundColor
	}
	if cc.Position != CHATBOT_POSITION_BOTTOM_LEFT {
		cc.Position = CHATBOT_POSITION_BOTTOM_RIGHT
	}
}
