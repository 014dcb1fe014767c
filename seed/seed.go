package seed

import (
	"errors"
	"log"
	"os"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the initial admin account if none exists.
// Credentials come from ADMIN_USERNAME/ADMIN_PASSWORD.
func SeedAdminUser() error {
	var existing models.User
	err := utils.DB.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set to seed the first admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Name:     "Administrator",
	}

	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}
