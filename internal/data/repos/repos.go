package repos

import (
	"github.com/animalloo/animalloo-backend/internal/data/repos/favorite"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type FavoriteRepo = favorite.FavoriteRepo

func NewFavoriteRepo(db *gorm.DB, baseLog *logger.Logger) FavoriteRepo {
	return favorite.NewFavoriteRepo(db, baseLog)
}
