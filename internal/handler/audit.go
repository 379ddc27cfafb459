package handler

import (
	"encoding/json"
	"time"

	"github.com/Aribhussain/campus-share/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auditor publishes user-action events after successful mutations. A nil
// producer disables it; enqueue failures are logged, never user-visible.
type Auditor interface {
	Record(event string, userID int, subject string)
}

func NewAuditor(producer sarama.SyncProducer, topic string, log *zap.Logger) Auditor {
	return &auditor{
		producer: producer,
		topic:    topic,
		log:      log.Named("audit"),
	}
}

type auditor struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func (a *auditor) Record(event string, userID int, subject string) {
	if a.producer == nil {
		return
	}
	ev := kafka.AuditEvent{
		ID:        uuid.NewString(),
		Event:     event,
		UserID:    userID,
		Subject:   subject,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	msg := &sarama.ProducerMessage{Topic: a.topic, Value: sarama.StringEncoder(data)}
	if _, _, err := a.producer.SendMessage(msg); err != nil {
		a.log.Warn("audit enqueue", zap.String("event", event), zap.Error(err))
	}
}
