package realtime

import (
	"encoding/json"
	"testing"
)

func newTestClient(id string, buffer int) *Client {
	return &Client{ID: id, Send: make(chan []byte, buffer)}
}

func TestBroadcastAllReachesEveryClient(t *testing.T) {
	hub := NewHub()
	a := newTestClient("a", 4)
	b := newTestClient("b", 4)
	hub.AddClient(a)
	hub.AddClient(b)

	hub.BroadcastAll(PaymentUpdateEvent{Type: EventPaymentUpdate, BookingID: 42})

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var event PaymentUpdateEvent
			if err := json.Unmarshal(raw, &event); err != nil {
				t.Fatalf("client %s: bad payload: %v", c.ID, err)
			}
			if event.BookingID != 42 {
				t.Fatalf("client %s: unexpected event %+v", c.ID, event)
			}
		default:
			t.Fatalf("client %s received nothing", c.ID)
		}
	}
}

func TestBroadcastTrackingOnlyReachesSubscribers(t *testing.T) {
	hub := NewHub()
	sub := newTestClient("sub", 4)
	other := newTestClient("other", 4)
	hub.AddClient(sub)
	hub.AddClient(other)
	hub.SubscribeTracking(7, "sub")

	hub.BroadcastTracking(7, TrackingUpdateEvent{Type: EventTrackingUpdate, ScheduleID: 7})

	select {
	case <-sub.Send:
	default:
		t.Fatalf("subscriber received nothing")
	}
	select {
	case raw := <-other.Send:
		t.Fatalf("non-subscriber received %s", raw)
	default:
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	slow := newTestClient("slow", 1)
	hub.AddClient(slow)

	hub.BroadcastAll(PaymentUpdateEvent{Type: EventPaymentUpdate, BookingID: 1})
	hub.BroadcastAll(PaymentUpdateEvent{Type: EventPaymentUpdate, BookingID: 2})

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected slow client to be dropped, count = %d", got)
	}
	// RemoveClient closes Send; drain the buffered message first.
	<-slow.Send
	if _, ok := <-slow.Send; ok {
		t.Fatalf("send channel should be closed")
	}
}

func TestRemoveClientClearsSubscriptions(t *testing.T) {
	hub := NewHub()
	c := newTestClient("c", 4)
	hub.AddClient(c)
	hub.SubscribeTracking(7, "c")
	hub.RemoveClient("c")

	// Must not panic or deliver to the removed client.
	hub.BroadcastTracking(7, TrackingUpdateEvent{Type: EventTrackingUpdate, ScheduleID: 7})
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("count = %d", got)
	}
}

func TestSubscribeUnknownClientIsNoop(t *testing.T) {
	hub := NewHub()
	hub.SubscribeTracking(7, "ghost")
	hub.BroadcastTracking(7, TrackingUpdateEvent{Type: EventTrackingUpdate, ScheduleID: 7})
}
