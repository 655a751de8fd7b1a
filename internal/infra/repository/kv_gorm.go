package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// cart_snapshots の1行。キーごとに最新のシリアライズ済み明細列を1つだけ持つ。
type CartSnapshotRow struct {
	Key       string    `gorm:"primaryKey;column:key;type:varchar(64)" json:"key"`
	Value     string    `gorm:"not null;type:text" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (CartSnapshotRow) TableName() string {
	return "cart_snapshots"
}

type KVGormRepository struct {
	db *gorm.DB
}

// DI
func NewKVGormRepository(db *gorm.DB) *KVGormRepository {
	return &KVGormRepository{db: db}
}

func (r *KVGormRepository) Get(ctx context.Context, key string) (string, error) {
	var row CartSnapshotRow

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

// 同一キーは上書き
func (r *KVGormRepository) Set(ctx context.Context, key string, value string) error {
	row := CartSnapshotRow{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
