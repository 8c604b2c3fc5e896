package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	adminModel "streamku_backend/internals/features/admins/auth/model"
	contentModel "streamku_backend/internals/features/catalog/content/model"
	genreModel "streamku_backend/internals/features/catalog/genre/model"
	seriesModel "streamku_backend/internals/features/catalog/series/model"
	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
	accountModel "streamku_backend/internals/features/users/account/model"
	authService "streamku_backend/internals/features/users/auth/service"
	profileModel "streamku_backend/internals/features/users/profile/model"
)

func SeedPlan(t *testing.T, db *gorm.DB, name string, price float64, maxProfiles int) subscriptionModel.SubscriptionModel {
	t.Helper()
	plan := subscriptionModel.SubscriptionModel{Name: name, MonthlyPrice: price, MaxProfiles: maxProfiles}
	require.NoError(t, db.Create(&plan).Error)
	return plan
}

func SeedAccount(t *testing.T, db *gorm.DB, email, password string, subscriptionID int) accountModel.AccountModel {
	t.Helper()
	hash, err := authService.HashPassword(password)
	require.NoError(t, err)
	acc := accountModel.AccountModel{Email: email, PasswordHash: hash, SubscriptionID: &subscriptionID}
	require.NoError(t, db.Create(&acc).Error)
	return acc
}

func SeedProfile(t *testing.T, db *gorm.DB, accountID int, name string) profileModel.ProfileModel {
	t.Helper()
	p := profileModel.ProfileModel{AccountID: accountID, Name: name, AgeRatingPref: "PG-13"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func SeedContent(t *testing.T, db *gorm.DB, title, contentType string, year int) contentModel.ContentModel {
	t.Helper()
	c := contentModel.ContentModel{Title: title, Type: contentType, Description: "seeded", ReleaseYear: year}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func SeedGenre(t *testing.T, db *gorm.DB, name string) genreModel.GenreModel {
	t.Helper()
	g := genreModel.GenreModel{Name: name}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func LinkGenre(t *testing.T, db *gorm.DB, contentID, genreID int) {
	t.Helper()
	require.NoError(t, db.Create(&genreModel.ContentGenreModel{ContentID: contentID, GenreID: genreID}).Error)
}

func SeedSeason(t *testing.T, db *gorm.DB, contentID, number int) seriesModel.SeasonModel {
	t.Helper()
	s := seriesModel.SeasonModel{ContentID: contentID, SeasonNumber: number}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func SeedEpisode(t *testing.T, db *gorm.DB, seasonID int, title string, number int) seriesModel.EpisodeModel {
	t.Helper()
	e := seriesModel.EpisodeModel{SeasonID: seasonID, Title: title, EpisodeNumber: number}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func SeedAdmin(t *testing.T, db *gorm.DB, username, password string) adminModel.AdminModel {
	t.Helper()
	hash, err := authService.HashPassword(password)
	require.NoError(t, err)
	a := adminModel.AdminModel{Username: username, PasswordHash: hash}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func AccountToken(t *testing.T, accountID int) string {
	t.Helper()
	token, err := authService.GenerateAccountToken(accountID)
	require.NoError(t, err)
	return token
}

func AdminToken(t *testing.T, adminID int) string {
	t.Helper()
	token, err := authService.GenerateAdminToken(adminID)
	require.NoError(t, err)
	return token
}
