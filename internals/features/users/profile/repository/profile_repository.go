package repository

import (
	"gorm.io/gorm"

	"streamku_backend/internals/features/users/profile/model"
)

// FindOwned mengambil profil hanya bila dimiliki akun pemanggil.
// Profil milik akun lain dan profil tak ada sama-sama gorm.ErrRecordNotFound;
// caller tidak boleh bisa membedakan keduanya.
func FindOwned(db *gorm.DB, profileID, accountID int) (*model.ProfileModel, error) {
	var profile model.ProfileModel
	err := db.Where("profile_id = ? AND account_id = ?", profileID, accountID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
