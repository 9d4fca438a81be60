// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sintacc/sintacc-backend/internal/config"
	"github.com/sintacc/sintacc-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// gen_random_uuid lives in pgcrypto on Postgres < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.BillingProfile{},
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Contact{},
		&models.Promotion{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Single default address/billing per user, enforced at the schema
		// level regardless of application bugs.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default ON addresses(user_id) WHERE is_default",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_billing_profiles_one_default ON billing_profiles(user_id) WHERE is_default",

		// One open cart per user.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_one_open ON carts(user_id) WHERE NOT is_checked_out",

		// One line per product in a cart; quantities merge instead.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_cart_product ON cart_items(cart_id, product_id)",

		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_title_lower ON products(LOWER(title))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var adminCount int64
	db.Model(&models.User{}).Where("? = ANY(roles)", models.RoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Email:    "admin@sintacc.com",
			FullName: "Administrador",
			Roles:    []string{models.RoleAdmin, models.RoleUser},
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	baseCategories := []models.Category{
		{Name: "Panificados", Description: "Panes, facturas y masas libres de gluten", IsFeatured: true},
		{Name: "Pastas", Description: "Pastas frescas y secas libres de gluten", IsFeatured: true},
		{Name: "Dulces", Description: "Galletitas, tortas y postres libres de gluten", IsFeatured: true},
		{Name: "Despensa", Description: "Harinas, premezclas y productos de despensa", IsFeatured: false},
	}

	for _, category := range baseCategories {
		var count int64
		db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Warning: Failed to create category %s: %v", category.Name, err)
			}
		}
	}

	baseTags := []string{"sin tacc", "vegano", "sin lactosa", "artesanal", "congelado"}
	for _, name := range baseTags {
		var count int64
		db.Model(&models.Tag{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			if err := db.Create(&models.Tag{Name: name}).Error; err != nil {
				log.Printf("Warning: Failed to create tag %s: %v", name, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}
