package input

import (
	"testing"
	"time"
)

func feed(s *Stream, bytes ...byte) {
	for _, b := range bytes {
		s.ch <- b
	}
}

func TestPollPressEdge(t *testing.T) {
	s := newStream()
	now := time.Now()

	feed(s, 'w')
	events, closed := s.Poll(now)

	if closed {
		t.Fatal("stream reported closed")
	}
	if len(events) != 1 || events[0] != (Event{Key: KeyLeftUp, Pressed: true}) {
		t.Fatalf("events = %v, want single left-up press", events)
	}

	// Repeated bytes within the hold window produce no further edges.
	feed(s, 'w')
	events, _ = s.Poll(now.Add(50 * time.Millisecond))
	if len(events) != 0 {
		t.Errorf("events = %v, want none while key stays held", events)
	}
}

func TestPollReleaseAfterHoldWindow(t *testing.T) {
	s := newStream()
	now := time.Now()

	feed(s, 's')
	s.Poll(now)

	events, _ := s.Poll(now.Add(keyHoldDuration))
	if len(events) != 1 || events[0] != (Event{Key: KeyLeftDown, Pressed: false}) {
		t.Fatalf("events = %v, want single left-down release", events)
	}

	// Released state is stable.
	events, _ = s.Poll(now.Add(2 * keyHoldDuration))
	if len(events) != 0 {
		t.Errorf("events = %v, want none after release", events)
	}
}

func TestPollArrowKeys(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want Key
	}{
		{"Up arrow", 'A', KeyRightUp},
		{"Down arrow", 'B', KeyRightDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, 0x1b, '[', tt.code)
			events, _ := s.Poll(time.Now())
			if len(events) != 1 || events[0] != (Event{Key: tt.want, Pressed: true}) {
				t.Errorf("events = %v, want %v press", events, tt.want)
			}
		})
	}
}

func TestPollIgnoresUnknownBytes(t *testing.T) {
	s := newStream()
	feed(s, 'x', 'z', '\t')
	events, _ := s.Poll(time.Now())
	if len(events) != 0 {
		t.Errorf("events = %v, want none for unmapped bytes", events)
	}
}

func TestPollSimultaneousKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	feed(s, 'w', 0x1b, '[', 'B')
	events, _ := s.Poll(now)

	if len(events) != 2 {
		t.Fatalf("events = %v, want two presses", events)
	}
	got := map[Key]bool{}
	for _, ev := range events {
		if !ev.Pressed {
			t.Errorf("unexpected release event %v", ev)
		}
		got[ev.Key] = true
	}
	if !got[KeyLeftUp] || !got[KeyRightDown] {
		t.Errorf("pressed keys = %v, want left-up and right-down", got)
	}
}

func TestPollClosedStream(t *testing.T) {
	s := newStream()
	feed(s, 'q')
	close(s.ch)

	events, closed := s.Poll(time.Now())
	if !closed {
		t.Fatal("stream not reported closed")
	}
	if len(events) != 1 || events[0] != (Event{Key: KeyQuit, Pressed: true}) {
		t.Errorf("events = %v, want quit press before close", events)
	}
}
