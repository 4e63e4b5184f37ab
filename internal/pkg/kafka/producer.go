package kafka

import (
	"Ripple/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// EngagementEvent 互动事件，发往 Kafka 供下游统计消费
type EngagementEvent struct {
	PostID     string    `json:"postId"`
	UserID     uint64    `json:"userId"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Producer interface {
	// PublishEngagement 异步发送，失败只记日志，不影响主流程
	PublishEngagement(ctx context.Context, evt *EngagementEvent)
	Close() error
}

type producerImpl struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	ap, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	p := &producerImpl{
		producer: ap,
		topic:    cfg.Kafka.Producer.Topic,
	}

	// 后台消费错误通道
	go func() {
		for perr := range ap.Errors() {
			log.Error("engagement event publish failed", "topic", perr.Msg.Topic, "err", perr.Err)
		}
	}()

	return p, nil
}

func (s *producerImpl) PublishEngagement(ctx context.Context, evt *EngagementEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		log.ErrorContext(ctx, "marshal engagement event failed", "err", err)
		return
	}

	s.producer.Input() <- &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(evt.PostID),
		Value: sarama.ByteEncoder(payload),
	}
}

func (s *producerImpl) Close() error {
	return s.producer.Close()
}
