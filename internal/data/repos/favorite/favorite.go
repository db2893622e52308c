package favorite

import (
	"context"

	types "github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepo interface {
	Add(ctx context.Context, tx *gorm.DB, userID, facilityID string) error
	Remove(ctx context.Context, tx *gorm.DB, userID, facilityID string) (bool, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Favorite, error)
}

type favoriteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFavoriteRepo(db *gorm.DB, baseLog *logger.Logger) FavoriteRepo {
	repoLog := baseLog.With("repo", "FavoriteRepo")
	return &favoriteRepo{db: db, log: repoLog}
}

// Add is idempotent: adding an existing pair is a no-op.
func (fr *favoriteRepo) Add(ctx context.Context, tx *gorm.DB, userID, facilityID string) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	row := &types.Favorite{UserID: userID, FacilityID: facilityID}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (fr *favoriteRepo) Remove(ctx context.Context, tx *gorm.DB, userID, facilityID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	res := transaction.WithContext(ctx).
		Where("user_id = ? AND facility_id = ?", userID, facilityID).
		Delete(&types.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (fr *favoriteRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Favorite
	if userID == "" {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
