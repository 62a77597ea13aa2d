package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
)

// DefaultAdmin defines the default admin user credentials
type DefaultAdmin struct {
	Email     string
	FirstName string
	LastName  string
	Key       string
}

// GetDefaultAdmin returns the default admin user
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		Email:     "admin@enerlytics.local",
		FirstName: "Admin",
		LastName:  "Enerlytics",
		Key:       "Admin@123", // Change this in production!
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	return SeedUsers(db)
}

// SeedUsers creates the default admin user if not exists
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existing model.User
	result := db.Where("email = ?", admin.Email).First(&existing)

	if result.Error == nil {
		return nil
	}

	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hashedKey, err := bcrypt.GenerateFromPassword([]byte(admin.Key), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Type:      model.UserTypeAdmin,
		HashedKey: string(hashedKey),
	}

	return db.Create(&user).Error
}
