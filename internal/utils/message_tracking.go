package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Consumers buffer work for batched persistence but commit offsets per
// message once its batch lands, so the originating message is tracked by
// item id until then.
var messageMap sync.Map

func TrackMessage(itemID string, msg *kafka.Message) {
	messageMap.Store(itemID, msg)
}

func GetMessageForItem(itemID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(itemID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(itemID)
	return msg.(*kafka.Message), true
}
