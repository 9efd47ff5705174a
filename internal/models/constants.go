package models

const (
	CategorySnacks    = "snacks"
	CategoryBeverages = "beverages"
	CategoryMeals     = "meals"

	OrderStatusPlaced = "Order placed successfully!"
	OrderErrorMessage = "Failed to place order"

	MinRating = 0.0
	MaxRating = 5.0

	OrderIDLength = 6
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"

	EventSinkNone     = "none"
	EventSinkLog      = "log"
	EventSinkKafka    = "kafka"
	EventSinkRabbitMQ = "rabbitmq"

	OutputFormatConsole = "console"
	OutputFormatJSON    = "json"
	OutputFormatParquet = "parquet"
	OutputFormatS3      = "s3"
)
