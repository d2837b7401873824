package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"danyowa/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTimezone           = "Asia/Seoul"
	defaultVAPIDSubject       = "mailto:danyowa@example.com"
	defaultVAPIDTTL           = 60
	defaultConcurrency        = 8
	defaultSendTimeout        = 10 * time.Second
	defaultJobTimeout         = 50 * time.Second
	defaultPushProvider       = constants.PushProviderWebPush
	defaultStoreProvider      = constants.StoreProviderMemory
	defaultRedisKey           = "danyowa:subscriptions"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		// Origins the web client is served from; "*" allows any
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Cron configuration for the schedule check trigger
	Cron CronConfig `json:"cron" yaml:"cron"`

	// VAPID configuration for web push signing
	VAPID VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Push selects the delivery transport
	Push PushConfig `json:"push" yaml:"push"`

	// Dispatch tunes the fan-out of due notifications
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Notification holds presentation defaults of every push message
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Store selects the subscription store
	Store StoreConfig `json:"store" yaml:"store"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for the FCM transport
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for the queue transport
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CronConfig defines how the schedule check is triggered and which clock it reads
type CronConfig struct {
	// Shared secret expected as "Authorization: Bearer <secret>"
	Secret string `json:"secret" yaml:"secret"`

	// IANA timezone the schedules are written in
	Timezone string `json:"timezone" yaml:"timezone"`

	// Accept unauthenticated triggers, honoured only in the develop environment
	AllowUnauthenticated bool `json:"allowUnauthenticated" yaml:"allowUnauthenticated"`

	// Upper bound of one job pass
	JobTimeout time.Duration `json:"jobTimeout" yaml:"jobTimeout"`
}

// VAPIDConfig defines the application server identity for web push
type VAPIDConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
	Subject    string `json:"subject" yaml:"subject"`
	TTL        int    `json:"ttl" yaml:"ttl"`
}

// PushConfig defines the push transport
type PushConfig struct {
	// Provider type: "webpush", "fcm" or "queue"
	Provider string `json:"provider" yaml:"provider"`
}

// DispatchConfig defines the bounds of notification delivery
type DispatchConfig struct {
	Concurrency int           `json:"concurrency" yaml:"concurrency"`
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
}

// NotificationConfig defines presentation defaults
type NotificationConfig struct {
	IconURL  string `json:"iconUrl" yaml:"iconUrl"`
	BadgeURL string `json:"badgeUrl" yaml:"badgeUrl"`
	ClickURL string `json:"clickUrl" yaml:"clickUrl"`
}

// StoreConfig defines the subscription store
type StoreConfig struct {
	// Provider type: "memory", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Queries slower than this are logged at warn level by the postgres store
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the Redis connection of the redis store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// Hash key holding one JSON record per user id
	Key string `json:"key" yaml:"key"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of the push subscription OIDC token (worker side)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(cfg.HTTP.AllowOrigins) == 0 {
		cfg.HTTP.AllowOrigins = []string{"*"}
	}
	if cfg.Cron.Timezone == "" {
		cfg.Cron.Timezone = defaultTimezone
	}
	if cfg.Cron.JobTimeout <= 0 {
		cfg.Cron.JobTimeout = defaultJobTimeout
	}
	if cfg.VAPID.Subject == "" {
		cfg.VAPID.Subject = defaultVAPIDSubject
	}
	if cfg.VAPID.TTL <= 0 {
		cfg.VAPID.TTL = defaultVAPIDTTL
	}
	if cfg.Push.Provider == "" {
		cfg.Push.Provider = defaultPushProvider
	}
	if cfg.Dispatch.Concurrency <= 0 {
		cfg.Dispatch.Concurrency = defaultConcurrency
	}
	if cfg.Dispatch.SendTimeout <= 0 {
		cfg.Dispatch.SendTimeout = defaultSendTimeout
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = defaultStoreProvider
	}
	if cfg.Redis != nil && cfg.Redis.Key == "" {
		cfg.Redis.Key = defaultRedisKey
	}
}

// AllowsUnauthenticatedCron reports whether cron triggers without a valid secret are accepted.
func (c *Config) AllowsUnauthenticatedCron() bool {
	return c.Cron.AllowUnauthenticated && c.Env.Env == constants.EnvDevelop
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
