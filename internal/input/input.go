// Package input decodes raw terminal bytes into abstract key press and
// release events.
//
// Terminals only report key-down bytes, so a key is considered held while
// its bytes keep arriving within keyHoldDuration (terminals auto-repeat
// held keys). A press event is emitted on the first sighting and a release
// event once the repeats stop.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last byte.
// Long enough to bridge terminal auto-repeat gaps, short enough that a
// release registers within a few frames.
const keyHoldDuration = 150 * time.Millisecond

// Key is an abstract key identifier the match controller maps to actions.
type Key int

const (
	KeyLeftUp Key = iota // 'w'
	KeyLeftDown          // 's'
	KeyRightUp           // Up arrow
	KeyRightDown         // Down arrow
	KeyServe             // Space
	KeyQuit              // 'q' or Ctrl-C
	numKeys
)

func (k Key) String() string {
	switch k {
	case KeyLeftUp:
		return "left-up"
	case KeyLeftDown:
		return "left-down"
	case KeyRightUp:
		return "right-up"
	case KeyRightDown:
		return "right-down"
	case KeyServe:
		return "serve"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a single key state transition.
type Event struct {
	Key     Key
	Pressed bool
}

// Stream delivers input bytes via a channel and tracks per-key hold state.
type Stream struct {
	ch       chan byte
	closed   bool
	lastSeen [numKeys]time.Time
	held     [numKeys]bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads bytes from r into the stream.
// The stream reports closed once r returns an error (EOF on window close).
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking), updates key hold state
// and returns the state transitions since the previous call. closed is true
// once the underlying reader has ended and all bytes are consumed.
func (s *Stream) Poll(now time.Time) (events []Event, closed bool) {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> for arrow keys.
		if b == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.lastSeen[KeyRightUp] = now
				i += 2
				continue
			case 'B':
				s.lastSeen[KeyRightDown] = now
				i += 2
				continue
			case 'C', 'D':
				i += 2
				continue
			}
		}

		if k, ok := keyForByte(b); ok {
			s.lastSeen[k] = now
		}
	}

	for k := Key(0); k < numKeys; k++ {
		heldNow := !s.lastSeen[k].IsZero() && now.Sub(s.lastSeen[k]) < keyHoldDuration
		if heldNow != s.held[k] {
			s.held[k] = heldNow
			events = append(events, Event{Key: k, Pressed: heldNow})
		}
	}

	return events, s.closed
}

// keyForByte maps a single input byte to its key, if any. Unrecognized
// bytes are ignored.
func keyForByte(b byte) (Key, bool) {
	switch b {
	case 'w', 'W':
		return KeyLeftUp, true
	case 's', 'S':
		return KeyLeftDown, true
	case ' ':
		return KeyServe, true
	case 'q', 'Q', 0x03: // Ctrl-C
		return KeyQuit, true
	default:
		return 0, false
	}
}
