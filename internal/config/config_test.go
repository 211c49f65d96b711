package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"DISCORD_TOKEN",
		"APPLICATION_ID",
		"GUILD_ID",
		"ERGAST_BASE_URL",
		"HTTP_TIMEOUT",
		"COMMAND_TIMEOUT",
		"CHARTS_ENABLED",
		"LOG_LEVEL",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := FromEnv()
	s.Require().NoError(err)

	s.Equal("", cfg.DiscordToken)
	s.Equal(DefaultErgastBaseURL, cfg.ErgastBaseURL)
	s.Equal(DefaultHTTPTimeout, cfg.HTTPTimeout)
	s.Equal(DefaultCommandTimeout, cfg.CommandTimeout)
	s.True(cfg.ChartsEnabled)
	s.Equal(zapcore.InfoLevel, cfg.LogLevel.Level())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("APPLICATION_ID", "app")
	s.T().Setenv("GUILD_ID", "guild")
	s.T().Setenv("ERGAST_BASE_URL", "http://localhost:8000/api/f1/")
	s.T().Setenv("HTTP_TIMEOUT", "2s")
	s.T().Setenv("COMMAND_TIMEOUT", "1m")
	s.T().Setenv("CHARTS_ENABLED", "false")
	s.T().Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	s.Require().NoError(err)

	s.Equal("token", cfg.DiscordToken)
	s.Equal("app", cfg.ApplicationID)
	s.Equal("guild", cfg.GuildID)
	s.Equal("http://localhost:8000/api/f1", cfg.ErgastBaseURL)
	s.Equal(2*time.Second, cfg.HTTPTimeout)
	s.Equal(time.Minute, cfg.CommandTimeout)
	s.False(cfg.ChartsEnabled)
	s.Equal(zapcore.DebugLevel, cfg.LogLevel.Level())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestInvalidValues() {
	cases := map[string]string{
		"HTTP_TIMEOUT":    "soon",
		"COMMAND_TIMEOUT": "-5s",
		"CHARTS_ENABLED":  "maybe",
		"LOG_LEVEL":       "loud",
	}

	for key, value := range cases {
		s.Run(key, func() {
			s.SetupTest()
			s.T().Setenv(key, value)

			_, err := FromEnv()
			s.Error(err)
			s.Contains(err.Error(), key)
		})
	}
}

func (s *ConfigTestSuite) TestValidateRequiresToken() {
	cfg, err := FromEnv()
	s.Require().NoError(err)

	s.EqualError(cfg.Validate(), "DISCORD_TOKEN environment variable is required")
}

func (s *ConfigTestSuite) TestLoadReadsEnvFile() {
	envFile := filepath.Join(s.T().TempDir(), "bot.env")
	s.Require().NoError(os.WriteFile(envFile, []byte("GUILD_ID=from-file\n"), 0o600))

	// godotenv never overrides variables that are already set, so unset it first
	s.Require().NoError(os.Unsetenv("GUILD_ID"))

	cfg, err := Load(envFile)
	s.Require().NoError(err)
	s.Equal("from-file", cfg.GuildID)
}

func (s *ConfigTestSuite) TestLoadToleratesMissingFile() {
	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal(DefaultErgastBaseURL, cfg.ErgastBaseURL)
}
