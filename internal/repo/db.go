package repo

import (
	"FileHaven/config"
	"FileHaven/model"
	"fmt"
	"log"
	"time"

	gormMysql "gorm.io/driver/mysql"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Db *gorm.DB

// autoMigrateAll migrates all database models.
func autoMigrateAll(db *gorm.DB) {
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Artifact{})
	db.AutoMigrate(&model.ShareGrant{})
}

// InitDB initializes the database connection for the configured driver.
func InitDB() {
	switch config.AppConfig.DBDriver {
	case "mysql":
		initMysql(config.AppConfig.DBName)
	default:
		initSqlite(config.AppConfig.DBPath)
	}
}

// initMysql opens a MySQL connection with the shared pool settings.
func initMysql(dbName string) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPass,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		dbName,
	)
	db, err := gorm.Open(gormMysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("init mysql fail", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("get sql db fail", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	autoMigrateAll(db)
	log.Println("init mysql success")
	Db = db
}

// initSqlite opens a SQLite database at the given path.
func initSqlite(path string) {
	db, err := gorm.Open(gormSqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("init sqlite fail", err)
	}
	autoMigrateAll(db)
	log.Println("init sqlite success")
	Db = db
}

// InitDBTest initializes an in-memory database for tests.
func InitDBTest() {
	initSqlite("file::memory:?cache=shared")
}
