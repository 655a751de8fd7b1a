package db

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RamiSparda/AppMovilApp/internal/config"
)

// Connect はカート永続化用のPostgresに接続して *gorm.DB を返す。
// 接続はpgx経由。DSNの妥当性チェックもpgxに任せる。
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL

	// DATABASE_URL がなければ個別項目から組み立てる
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB,
		)
	}

	pgxCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	return gorm.Open(postgres.New(postgres.Config{
		Conn: stdlib.OpenDB(*pgxCfg),
	}), &gorm.Config{})
}
