package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Secreto de cifrado por defecto, heredado del despliegue original. Solo
// sirve para uso local; main lo registra en voz alta como modo inseguro.
const InsecureDefaultSecret = "45678DFGHVFYT5467VGFTGH"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	JWT   JWTConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig configuración del almacén cifrado de documento único.
type StoreConfig struct {
	File            string // archivo cifrado (db.enc)
	LegacyFile      string // archivo JSON plano heredado, migrado una sola vez
	Secret          string // clave simétrica de cifrado
	VerifySignature bool   // verificar la firma del documento al leer
}

// UsesInsecureDefault informa si el secreto de cifrado es el valor por
// defecto empotrado.
func (c StoreConfig) UsesInsecureDefault() bool {
	return c.Secret == InsecureDefaultSecret
}

// JWTConfig configuración de la sesión admin firmada.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del único usuario administrador. Si PasswordHash
// (bcrypt) está definido tiene prioridad sobre Password en texto plano.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_SECRET, ADMIN_PASSWORD, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "farmacia-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Store: StoreConfig{
			File:            getString(v, "DB_FILE", "db.enc"),
			LegacyFile:      getString(v, "DB_LEGACY_FILE", "db.json"),
			Secret:          getString(v, "DB_SECRET", InsecureDefaultSecret),
			VerifySignature: getBool(v, "STORE_VERIFY_SIGNATURE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "farmacia-api"),
		},
		Admin: AdminConfig{
			Username:     getString(v, "ADMIN_USERNAME", "admin"),
			Password:     getString(v, "ADMIN_PASSWORD", "admin"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
	}

	// Sin JWT_SECRET explícito la sesión se firma con el secreto del
	// almacén; main avisa cuando ambos son el valor por defecto.
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = cfg.Store.Secret
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
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
