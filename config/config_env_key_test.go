package config

import (
	"testing"
	"time"

	"danyowa/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cron": map[string]any{
			"secret":               "",
			"allowUnauthenticated": false,
		},
		"vapid": map[string]any{
			"privateKey": "",
			"publicKey":  "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CRON_SECRET", want: "cron.secret"},
		{envKey: "CRON_ALLOWUNAUTHENTICATED", want: "cron.allowUnauthenticated"},
		{envKey: "VAPID_PRIVATEKEY", want: "vapid.privateKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultTimezone, cfg.Cron.Timezone)
	assert.Equal(t, defaultVAPIDSubject, cfg.VAPID.Subject)
	assert.Equal(t, defaultVAPIDTTL, cfg.VAPID.TTL)
	assert.Equal(t, constants.PushProviderWebPush, cfg.Push.Provider)
	assert.Equal(t, constants.StoreProviderMemory, cfg.Store.Provider)
	assert.Equal(t, 8, cfg.Dispatch.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.SendTimeout)
	assert.Equal(t, defaultRedisKey, cfg.Redis.Key)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
}

func TestAllowsUnauthenticatedCron(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		allow bool
		want  bool
	}{
		{name: "develop with flag", env: constants.EnvDevelop, allow: true, want: true},
		{name: "develop without flag", env: constants.EnvDevelop, allow: false, want: false},
		{name: "production with flag", env: constants.EnvProduction, allow: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Env = tt.env
			cfg.Cron.AllowUnauthenticated = tt.allow

			assert.Equal(t, tt.want, cfg.AllowsUnauthenticatedCron())
		})
	}
}
