package constants

const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02T15:04:05"
)

const (
	DefaultRunAddr       = ":8080"
	DefaultTemplatesDir  = "templates"
	DefaultStaticDir     = "static"
	DefaultMigrationsDir = "migrations"
)
