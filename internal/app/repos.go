package app

import (
	"gorm.io/gorm"

	"github.com/animalloo/animalloo-backend/internal/data/repos"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

type Repos struct {
	Favorite repos.FavoriteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Favorite: repos.NewFavoriteRepo(db, log),
	}
}
