package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hostel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin and a starter catalog so a fresh
// install has something to sell.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hostel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Catalog ----------------
	var activityCount int64
	DB.Model(&models.Activity{}).Count(&activityCount)
	if activityCount == 0 {
		activities := []models.Activity{
			{Name: "Snorkeling Day Trip", Price: 1200, Commission: 100},
			{Name: "Kayak Rental (half day)", Price: 400, Commission: 50},
			{Name: "Jungle Trek", Price: 900, Commission: 80},
		}
		DB.Create(&activities)
		log.Println("Activities seeded")
	}

	var tripCount int64
	DB.Model(&models.SpeedBoatTrip{}).Count(&tripCount)
	if tripCount == 0 {
		trips := []models.SpeedBoatTrip{
			{Route: "Koh Tao", Company: "Lomprayah", Price: 600, Cost: 450, Commission: 30},
			{Route: "Koh Phangan", Company: "Lomprayah", Price: 500, Cost: 380, Commission: 30},
			{Route: "Surat Thani", Company: "Seatran", Price: 450, Cost: 350, Commission: 25},
		}
		DB.Create(&trips)
		log.Println("Speedboat trips seeded")
	}

	var taxiCount int64
	DB.Model(&models.TaxiBoatOption{}).Count(&taxiCount)
	if taxiCount == 0 {
		taxis := []models.TaxiBoatOption{
			{Name: "Taxi boat - short hop", Price: 150, Commission: 20},
			{Name: "Taxi boat - full island", Price: 300, Commission: 40},
		}
		DB.Create(&taxis)
		log.Println("Taxi boat options seeded")
	}

	var extraCount int64
	DB.Model(&models.Extra{}).Count(&extraCount)
	if extraCount == 0 {
		extras := []models.Extra{
			{Name: "Fins", Price: 50},
			{Name: "Snorkel set", Price: 80},
			{Name: "Dry bag", Price: 60},
			{Name: "Lunch box", Price: 120},
		}
		DB.Create(&extras)
		log.Println("Extras seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Staff{},
		&models.Room{},
		&models.Bed{},
		&models.Activity{},
		&models.SpeedBoatTrip{},
		&models.TaxiBoatOption{},
		&models.Extra{},
		&models.Booking{},
		&models.ExternalSale{},
		&models.PlatformPayment{},
		&models.UtilityRecord{},
		&models.SalaryAdvance{},
		&models.Absence{},
		&models.WalkInGuest{},
		&models.AccommodationBooking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
