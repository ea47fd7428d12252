package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Dosada05/golf-matchplay/scoring"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL        string
	JWTSecretKey       string
	ServerPort         int
	MatchupTablePath   string
	CORSAllowedOrigins []string
	LogLevel           slog.Level

	PointScale   scoring.PointScale
	StrokePolicy scoring.StrokePolicy

	R2 R2Config
}

// R2Config описывает хранилище фото карточек. Пустой конфиг означает, что загрузка выключена.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Enabled returns true only when every field is set.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		c.BucketName != "" && c.PublicBaseURL != ""
}

func (c R2Config) partial() bool {
	return !c.Enabled() &&
		(c.AccountID != "" || c.AccessKeyID != "" || c.SecretAccessKey != "" || c.BucketName != "" || c.PublicBaseURL != "")
}

const (
	defaultPort             = 8080
	defaultMatchupTablePath = "config/matchups.yaml"
	defaultCORSOrigin       = "http://localhost:3000"
)

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из произвольного источника переменных.
func FromEnv(getenv func(string) string) (*Config, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intFromEnv(getenv, "SERVER_PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	tablePath := getenv("MATCHUP_TABLE_PATH")
	if tablePath == "" {
		tablePath = defaultMatchupTablePath
	}

	scale, err := pointScaleFromEnv(getenv)
	if err != nil {
		return nil, err
	}

	policy, err := strokePolicyFromEnv(getenv)
	if err != nil {
		return nil, err
	}

	level, err := logLevelFromEnv(getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	r2 := R2Config{
		AccountID:       getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   getenv("R2_PUBLIC_BASE_URL"),
	}
	if r2.partial() {
		return nil, fmt.Errorf("R2 storage is partially configured: set all R2_* variables or none")
	}

	return &Config{
		DatabaseURL:        dbURL,
		JWTSecretKey:       jwtKey,
		ServerPort:         port,
		MatchupTablePath:   tablePath,
		CORSAllowedOrigins: splitOrigins(getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           level,
		PointScale:         scale,
		StrokePolicy:       policy,
		R2:                 r2,
	}, nil
}

// pointScaleFromEnv: POINT_SCALE выбирает пресет, POINTS_WIN/TIE/LOSS переопределяют его целиком.
func pointScaleFromEnv(getenv func(string) string) (scoring.PointScale, error) {
	scale, err := scoring.PointScaleByName(getenv("POINT_SCALE"))
	if err != nil {
		return scoring.PointScale{}, fmt.Errorf("invalid POINT_SCALE: %w", err)
	}

	win, tie, loss := getenv("POINTS_WIN"), getenv("POINTS_TIE"), getenv("POINTS_LOSS")
	if win == "" && tie == "" && loss == "" {
		return scale, nil
	}
	if win == "" || tie == "" || loss == "" {
		return scoring.PointScale{}, fmt.Errorf("POINTS_WIN, POINTS_TIE and POINTS_LOSS must be set together")
	}

	custom := scoring.PointScale{Name: "custom"}
	if custom.Win, err = strconv.Atoi(win); err != nil {
		return scoring.PointScale{}, fmt.Errorf("invalid POINTS_WIN: %w", err)
	}
	if custom.Tie, err = strconv.Atoi(tie); err != nil {
		return scoring.PointScale{}, fmt.Errorf("invalid POINTS_TIE: %w", err)
	}
	if custom.Loss, err = strconv.Atoi(loss); err != nil {
		return scoring.PointScale{}, fmt.Errorf("invalid POINTS_LOSS: %w", err)
	}
	if err := custom.Validate(); err != nil {
		return scoring.PointScale{}, err
	}
	return custom, nil
}

func strokePolicyFromEnv(getenv func(string) string) (scoring.StrokePolicy, error) {
	policy := scoring.DefaultStrokePolicy
	var err error
	if policy.Divisor, err = intFromEnv(getenv, "STROKE_DIVISOR", policy.Divisor); err != nil {
		return scoring.StrokePolicy{}, err
	}
	if policy.Cap, err = intFromEnv(getenv, "STROKE_CAP", policy.Cap); err != nil {
		return scoring.StrokePolicy{}, err
	}
	if err := policy.Validate(); err != nil {
		return scoring.StrokePolicy{}, err
	}
	return policy, nil
}

func logLevelFromEnv(raw string) (slog.Level, error) {
	if raw == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func intFromEnv(getenv func(string) string, key string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{defaultCORSOrigin}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
