package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/openepi/mpox-analytics-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("mpox")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS mpox`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO mpox").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Dataset{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Dataset{}).
		AddIndex("idx_datasets_status_created_at", "status", "created_at").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
