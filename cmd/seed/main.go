package main

import (
	"log"
	"os"

	"ai-ordering-be/internal/model"
	"ai-ordering-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds one demo business with a small catalog and a console employee so
// the assistant boundary can be exercised end to end on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	businessId := seedBusiness(db)
	seedOpeningHours(db, businessId)
	seedItems(db, businessId)
	seedEmployee(db, businessId)

	color.Green("Success: demo data seeded (business %s)", businessId)
}

func seedBusiness(db *gorm.DB) uuid.UUID {
	lat, lon := -6.200000, 106.816666
	radius := 10.0
	cancelWindow := 4.0

	business := model.Business{
		Id:                           uuid.New(),
		Name:                         "Warung Demo",
		Timezone:                     "Asia/Jakarta",
		Latitude:                     &lat,
		Longitude:                    &lon,
		DeliveryRadiusKm:             &radius,
		DeliveryFee:                  10000,
		DefaultCancelableBeforeHours: &cancelWindow,
		NotificationEmail:            "owner@warungdemo.example",
	}
	if err := db.Create(&business).Error; err != nil {
		log.Fatalf("Error: failed to seed business: %v", err)
	}
	return business.Id
}

func seedOpeningHours(db *gorm.DB, businessId uuid.UUID) {
	for weekday := 0; weekday < 7; weekday++ {
		row := model.BusinessOpeningHour{
			Id:         uuid.New(),
			BusinessId: businessId,
			Weekday:    weekday,
			Closed:     weekday == 1, // closed on Mondays
			Open:       "09:00",
			Close:      "21:00",
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("Error: failed to seed opening hours: %v", err)
		}
	}
}

func seedItems(db *gorm.DB, businessId uuid.UUID) {
	tumpengCancelWindow := 24.0

	items := []model.Item{
		{Id: uuid.New(), BusinessId: businessId, Name: "Nasi Goreng", Price: 25000, Available: true, Position: 1},
		{Id: uuid.New(), BusinessId: businessId, Name: "Nasi Goreng Spesial", Price: 35000, Available: true, Position: 2},
		{Id: uuid.New(), BusinessId: businessId, Name: "Es Teh", Price: 8000, Available: true, Position: 3},
		{Id: uuid.New(), BusinessId: businessId, Name: "Ayam Bakar", Price: 30000, Available: true, Position: 4},
		{
			Id: uuid.New(), BusinessId: businessId, Name: "Tumpeng", Price: 450000, Available: true,
			IsSchedulable: true, MinScheduleHours: 24, CancelableBeforeHours: &tumpengCancelWindow, Position: 5,
		},
		{Id: uuid.New(), BusinessId: businessId, Name: "Soto Ayam", Price: 22000, Available: false, Position: 6},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Fatalf("Error: failed to seed item %s: %v", items[i].Name, err)
		}
	}
}

func seedEmployee(db *gorm.DB, businessId uuid.UUID) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash password: %v", err)
	}

	employee := model.Employee{
		Id:           uuid.New(),
		BusinessId:   businessId,
		Email:        "staff@warungdemo.example",
		PasswordHash: string(hash),
		Name:         "Demo Staff",
	}
	if err := db.Create(&employee).Error; err != nil {
		log.Fatalf("Error: failed to seed employee: %v", err)
	}
}
