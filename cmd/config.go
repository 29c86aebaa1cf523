package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	DCServiceURL        string
	RedisAddr           string
	KafkaHost           string
	KafkaConsumerGroup  string
	KafkaOrderTopic     string
	StuckOrderThreshold string
}
