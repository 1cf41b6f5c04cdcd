package pubsub

import (
	"sync"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// The value doubles as the topic name.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
)

// Handler consumes the raw payload of an event delivered in-process.
type Handler func(data []byte) error

// LocalClient delivers events to in-process subscribers instead of Google Pub/Sub.
type LocalClient struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}
