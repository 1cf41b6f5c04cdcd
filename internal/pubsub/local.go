package pubsub

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var _ PubSubClient = (*LocalClient)(nil)

// NewLocal creates a client for running without a Google Cloud project.
// Messages are encoded exactly as for Pub/Sub and handed to subscribers synchronously.
func NewLocal() *LocalClient {
	return &LocalClient{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers h for topic.
func (c *LocalClient) Subscribe(topic EventType, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = append(c.handlers[topic], h)
}

func (c *LocalClient) SendMessage(topic EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}

	c.mu.RLock()
	handlers := c.handlers[topic]
	c.mu.RUnlock()

	if len(handlers) == 0 {
		log.Debug("No local subscribers for topic", "topic", topic)
		return nil
	}
	var errs []error
	for _, h := range handlers {
		if err := h(msgpackData); err != nil {
			log.Error("Local subscriber failed", "error", err, "topic", topic)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *LocalClient) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (c *LocalClient) Close() {}
