package pubsub

import (
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicCartChanged, 1)
	defer cancel()

	bus.Publish(TopicCartChanged, "user-1")

	select {
	case ev := <-ch:
		if ev.Topic != TopicCartChanged {
			t.Errorf("topic = %q, want %q", ev.Topic, TopicCartChanged)
		}
		if ev.Payload != "user-1" {
			t.Errorf("payload = %v, want user-1", ev.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestPublishToOtherTopicNotDelivered(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicCartChanged, 1)
	defer cancel()

	bus.Publish(TopicOrderCreated, "order-1")

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicAuthChanged, 1)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("channel still open after cancel")
	}

	// Publishing after cancel must not panic.
	bus.Publish(TopicAuthChanged, nil)
}

func TestFullBufferDoesNotBlockPublish(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(TopicOrderStatus, 1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		bus.Publish(TopicOrderStatus, 1)
		bus.Publish(TopicOrderStatus, 2) // buffer full, dropped
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on full subscriber")
	}
}
