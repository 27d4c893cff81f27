package internal

import (
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BotToken         string       `envconfig:"BOT_TOKEN" required:"true"`
	MercadoPagoToken string       `envconfig:"MP_TOKEN" required:"true"`
	GuildID          snowflake.ID `envconfig:"GUILD_ID" required:"true"`
	VIPRoleID        snowflake.ID `envconfig:"ROLE_VIP_ID" required:"true"`
	CrewRoleID       snowflake.ID `envconfig:"CREW_ROLE_ID" required:"true"`
	Port             int          `envconfig:"PORT" default:"3000"`

	// Some deployments restrict the draw button to the guild owner and
	// holders of DrawRoleID.
	RequirePrivilegedDraw bool         `envconfig:"REQUIRE_PRIVILEGED_DRAW"`
	DrawRoleID            snowflake.ID `envconfig:"DRAW_ROLE_ID"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"CREW_ENVIRONMENT"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	return &cfg, nil
}
