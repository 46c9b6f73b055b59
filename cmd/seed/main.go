package main

import (
	"log"
	"os"

	"mindvault-be/internal/model"
	"mindvault-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

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

	color.Cyan("Seeding MindVault development data...")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash admin password:", err)
	}

	admin := model.User{
		Email:        "admin@mindvault.local",
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}

	var existing model.User
	if err := db.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		color.Yellow("Admin user already exists, skipping")
		admin = existing
	} else {
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("Error: Failed to create admin user:", err)
		}
		color.Green("Created admin user %s", admin.Email)
	}

	ideas := []model.Idea{
		{
			UserId:   admin.Id,
			Title:    "Solar powered garden sensor",
			Content:  "Build a small device with a solar panel that measures soil moisture and publishes readings over wifi.",
			Tags:     datatypes.JSON([]byte(`["hardware", "garden"]`)),
			Priority: "high",
			Category: "invention",
		},
		{
			UserId:   admin.Id,
			Title:    "Short story about a lighthouse keeper",
			Content:  "A character study set on a remote island. The keeper discovers old letters hidden in the lamp room.",
			Tags:     datatypes.JSON([]byte(`["writing", "fiction"]`)),
			Priority: "medium",
			Category: "story",
		},
		{
			UserId:     admin.Id,
			Title:      "Weekly market research digest",
			Content:    "Summarize interesting findings and survey data into a short analysis email every Friday.",
			Tags:       datatypes.JSON([]byte(`["research"]`)),
			Priority:   "low",
			Category:   "research",
			IsFavorite: true,
		},
	}

	for _, idea := range ideas {
		var count int64
		db.Model(&model.Idea{}).Where("user_id = ? AND title = ?", idea.UserId, idea.Title).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&idea).Error; err != nil {
			color.Red("Failed to seed idea %q: %v", idea.Title, err)
			continue
		}
		color.Green("Seeded idea %q", idea.Title)
	}

	color.Cyan("Done.")
}
