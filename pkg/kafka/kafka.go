package kafka

import (
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs      []string `envconfig:"KAFKA_ADDRS"`
	AuditTopic string   `envconfig:"KAFKA_AUDIT_TOPIC" default:"campus-share.audit"`
}

// AuditEvent is published for every successful user-initiated mutation.
type AuditEvent struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	UserID    int    `json:"userId"`
	Subject   string `json:"subject"`
	Timestamp int64  `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
