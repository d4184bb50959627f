package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// Connect opens the Postgres connection. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey, which the repositories
// map onto the domain conflict errors.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema, including the two composite unique
// indexes on reservations and the cascading foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Classroom{},
		&domain.Reservation{},
	)
}
