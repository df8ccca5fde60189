package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hometrack/hometrack-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// Models lists every table managed by the API.
func Models() []any {
	return []any{
		&models.User{},
		&models.FoodItem{},
		&models.CleaningSupply{},
		&models.PersonalCareItem{},
		&models.HouseholdItem{},
		&models.ToolItem{},
		&models.ShoppingListItem{},
		&models.Task{},
		&models.Expense{},
	}
}

// ownedTables are listed newest-first per user, so each gets a composite
// (user_id, updated_at) index.
func ownedTables() []string {
	return []string{
		models.FoodItem{}.TableName(),
		models.CleaningSupply{}.TableName(),
		models.PersonalCareItem{}.TableName(),
		models.HouseholdItem{}.TableName(),
		models.ToolItem{}.TableName(),
		models.ShoppingListItem{}.TableName(),
		models.Task{}.TableName(),
		models.Expense{}.TableName(),
	}
}

// AddIndexes adds the listing indexes that struct tags cannot express
func AddIndexes(db *gorm.DB) error {
	for _, table := range ownedTables() {
		name := fmt.Sprintf("idx_%s_user_updated", table)

		if db.Migrator().HasIndex(table, name) {
			slog.Debug("Index already exists, skipping", "index", name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (user_id, updated_at)", name, table)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}

		slog.Info("Created index", "index", name, "table", table)
	}

	return nil
}

// MigrateDatabase creates the schema and indexes
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}

// MigrateMongo creates the collection indexes. Creating an index that already
// exists with the same definition is a no-op.
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(models.User{}.TableName())
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create index on users: %w", err)
	}

	for _, name := range ownedTables() {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
			Options: options.Index().SetName(fmt.Sprintf("idx_%s_user_updated", name)),
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}

	slog.Info("MongoDB indexes ensured")
	return nil
}
