package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	KafkaHost           string
	KafkaSelectionTopic string
	RedisHost           string
	ManifestOutputDir   string
	ManifestPDFRenderer string
	ManifestBaseURL     string
	DefaultCurrency     string
	SystemActor         string
}
