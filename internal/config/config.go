package config

import (
	"fmt"
	"os"
	"strconv"
)

// カート永続化のバックエンド種別
const (
	CartBackendMemory   = "memory"
	CartBackendRedis    = "redis"
	CartBackendPostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod

	CartBackend string // memory / redis / postgres

	RedisAddr string // Redisアドレス（localhost:6379）

	DatabaseURL      string // 指定があればPostgres接続はこれを最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）

	FirestoreProjectID  string // カタログ用FirestoreのプロジェクトID（空ならサンプルカタログ）
	FirestoreCredsFile  string // サービスアカウントJSONのパス（空ならADC）
	FirestoreProductCol string // 商品コレクション名（productos）
}

// Loadは環境変数から読む。必須はPORTとGO_ENVのみで、
// 選択したバックエンドに応じた項目だけ追加で必須になる。
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		GoEnv: os.Getenv("GO_ENV"),

		CartBackend: getenv("CART_BACKEND", CartBackendMemory),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),

		FirestoreProjectID:  os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredsFile:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProductCol: getenv("FIRESTORE_PRODUCT_COLLECTION", "productos"),
	}

	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("POSTGRES_PORT must be number: %w", err)
		}
		cfg.PostgresPort = p
	} else {
		cfg.PostgresPort = 5432
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	switch cfg.CartBackend {
	case CartBackendMemory, CartBackendRedis:
		// 追加の必須なし
	case CartBackendPostgres:
		if cfg.DatabaseURL == "" {
			if cfg.PostgresUser == "" {
				return Config{}, fmt.Errorf("POSTGRES_USER is required")
			}
			if cfg.PostgresPassword == "" {
				return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
			}
			if cfg.PostgresDB == "" {
				return Config{}, fmt.Errorf("POSTGRES_DB is required")
			}
		}
	default:
		return Config{}, fmt.Errorf("CART_BACKEND must be memory, redis or postgres")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
