package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	Auth    AuthConfig
	HTTP    HTTPConfig
	Storage StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StorageConfig selecciona el adaptador de persistencia.
type StorageConfig struct {
	Driver string // postgres | memory
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	// Ajustes del pool (pgxpool).
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	// ForceIPv4 resuelve el host a IPv4 antes de conectar (Docker sin IPv6, Supabase con solo AAAA).
	ForceIPv4 bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig configuración de la cookie de sesión.
type AuthConfig struct {
	CookieName   string
	CookieSecure bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gestion-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gestion"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),

			MinConns:        getInt(v, "DB_MIN_CONNS", 2),
			MaxConnLifetime: getDuration(v, "DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime: getDuration(v, "DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
			ForceIPv4:       getBool(v, "DB_FORCE_IPV4", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "gestion-api"),
		},
		Auth: AuthConfig{
			CookieName:   getString(v, "AUTH_COOKIE_NAME", "session"),
			CookieSecure: getBool(v, "AUTH_COOKIE_SECURE", false),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "HTTP_CORS_ORIGINS", ""),
		},
	}

	switch cfg.Storage.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	return v.GetBool(key)
}
