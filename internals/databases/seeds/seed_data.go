package seeds

import (
	"fmt"

	"gorm.io/gorm"

	adminModel "streamku_backend/internals/features/admins/auth/model"
	contentModel "streamku_backend/internals/features/catalog/content/model"
	genreModel "streamku_backend/internals/features/catalog/genre/model"
	mediaModel "streamku_backend/internals/features/catalog/media/model"
	seriesModel "streamku_backend/internals/features/catalog/series/model"
	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
	authService "streamku_backend/internals/features/users/auth/service"
)

// SeedAll populates the starter catalog, the subscription plans, and
// the default admin (username: admin, password: admin123).
func SeedAll(db *gorm.DB) error {
	if err := seedSubscriptions(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedGenres(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	return nil
}

func seedSubscriptions(db *gorm.DB) error {
	plans := []subscriptionModel.SubscriptionModel{
		{Name: "Basic", MonthlyPrice: 9.99, MaxProfiles: 1},
		{Name: "Standard", MonthlyPrice: 15.99, MaxProfiles: 2},
		{Name: "Premium", MonthlyPrice: 19.99, MaxProfiles: 4},
	}
	return db.Create(&plans).Error
}

func seedAdmin(db *gorm.DB) error {
	hash, err := authService.HashPassword("admin123")
	if err != nil {
		return err
	}
	return db.Create(&adminModel.AdminModel{
		Username:     "admin",
		PasswordHash: hash,
	}).Error
}

func seedGenres(db *gorm.DB) error {
	names := []string{
		"Action", "Comedy", "Drama", "Horror", "Sci-Fi",
		"Romance", "Thriller", "Documentary", "Animation", "Fantasy",
	}
	genres := make([]genreModel.GenreModel, 0, len(names))
	for _, n := range names {
		genres = append(genres, genreModel.GenreModel{Name: n})
	}
	return db.Create(&genres).Error
}

func seedCatalog(db *gorm.DB) error {
	movies := []contentModel.ContentModel{
		{Title: "The Space Odyssey", Type: contentModel.TypeMovie, Description: "An epic journey through space and time", ReleaseYear: 2023},
		{Title: "Midnight Laughter", Type: contentModel.TypeMovie, Description: "A hilarious comedy about late night adventures", ReleaseYear: 2022},
		{Title: "The Last Stand", Type: contentModel.TypeMovie, Description: "An action-packed thriller", ReleaseYear: 2024},
	}
	if err := db.Create(&movies).Error; err != nil {
		return err
	}

	show := contentModel.ContentModel{
		Title:       "Cosmic Adventures",
		Type:        contentModel.TypeShow,
		Description: "A thrilling sci-fi series",
		ReleaseYear: 2023,
	}
	if err := db.Create(&show).Error; err != nil {
		return err
	}

	season1 := seriesModel.SeasonModel{ContentID: show.ContentID, SeasonNumber: 1}
	season2 := seriesModel.SeasonModel{ContentID: show.ContentID, SeasonNumber: 2}
	if err := db.Create(&season1).Error; err != nil {
		return err
	}
	if err := db.Create(&season2).Error; err != nil {
		return err
	}

	episodes := []seriesModel.EpisodeModel{
		{SeasonID: season1.SeasonID, Title: "Pilot", EpisodeNumber: 1},
		{SeasonID: season1.SeasonID, Title: "The Discovery", EpisodeNumber: 2},
		{SeasonID: season1.SeasonID, Title: "New Horizons", EpisodeNumber: 3},
		{SeasonID: season2.SeasonID, Title: "Return Journey", EpisodeNumber: 1},
		{SeasonID: season2.SeasonID, Title: "The Awakening", EpisodeNumber: 2},
	}
	if err := db.Create(&episodes).Error; err != nil {
		return err
	}

	// Genre links: movies by release order, then the show.
	links := []struct {
		content contentModel.ContentModel
		genre   string
	}{
		{movies[0], "Sci-Fi"},
		{movies[1], "Comedy"},
		{movies[2], "Action"},
		{show, "Sci-Fi"},
	}
	for _, l := range links {
		var g genreModel.GenreModel
		if err := db.Where("name = ?", l.genre).First(&g).Error; err != nil {
			return err
		}
		link := genreModel.ContentGenreModel{ContentID: l.content.ContentID, GenreID: g.GenreID}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}

	// HD + SD renditions for each movie.
	for _, m := range movies {
		files := []mediaModel.MediaFileModel{
			{ContentID: m.ContentID, Resolution: "1080p", Language: "English", FilePath: fmt.Sprintf("/media/content_%d_1080p_en.mp4", m.ContentID)},
			{ContentID: m.ContentID, Resolution: "720p", Language: "English", FilePath: fmt.Sprintf("/media/content_%d_720p_en.mp4", m.ContentID)},
		}
		if err := db.Create(&files).Error; err != nil {
			return err
		}
	}

	return nil
}
