package kafka

import (
	"Ripple/internal/api/config"
	"time"

	"github.com/IBM/sarama"
)

// newSaramaConfig 统一初始化 sarama.Config，避免代码重复
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Producer.Return.Errors = true
	c.Producer.RequiredAcks = sarama.RequiredAcks(kafkaCfg.Producer.RequiredAcks)
	if kafkaCfg.Producer.MaxRetry > 0 {
		c.Producer.Retry.Max = kafkaCfg.Producer.MaxRetry
	}
	if kafkaCfg.Producer.TimeoutSec > 0 {
		c.Producer.Timeout = time.Duration(kafkaCfg.Producer.TimeoutSec) * time.Second
	}

	return c
}
