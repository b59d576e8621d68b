package config

import "time"

const (
	SourceCSV   = "csv"
	SourceMongo = "mongo"
)

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultDataSource          = SourceCSV
	DefaultDataPath            = "./hotel_reservation.csv"
	DefaultEmptyResultFallback = true
	DefaultMaxTableRows        = 1000
	DefaultPageSize            = 50
	DefaultMigrateImportCSV    = true

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "hoteldash"
	DefaultMongoCollection   = "reservations"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
