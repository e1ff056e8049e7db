package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vmaslov/mycars-backend/models"
)

var DB *gorm.DB

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get sql.DB from gorm:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.Manufacturer{},
		&models.Tag{},
		&models.Car{},
		&models.CarDetail{},
		&models.User{},
	)
	if err != nil {
		log.Fatal("autoMigrate failed: ", err)
	}
	log.Println("postgreSQL connected & migrated successfully!")

	seedAdmin()
}

// seedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD on
// first boot. Does nothing when the account already exists.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("could not hash admin password:", err)
		return
	}

	admin := models.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("could not seed admin user:", err)
		return
	}
	log.Println("admin user seeded:", email)
}
