package launcher

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/StarNumber12046/rocket/internal/gesture"
)

// Binding pairs a gesture with a pre-compiled command. Run never returns an
// error: failures are reported by the closure itself.
type Binding struct {
	ID          string
	Gesture     gesture.Action
	Command     string
	Fingerprint string
	CreatedAt   time.Time
	Run         func()
}

// NewBinding stamps a binding with a fresh ID and its fingerprint.
func NewBinding(action gesture.Action, command string, run func()) Binding {
	return Binding{
		ID:          uuid.NewString(),
		Gesture:     action,
		Command:     command,
		Fingerprint: Fingerprint(action, command),
		CreatedAt:   time.Now().UTC(),
		Run:         run,
	}
}

// Fingerprint identifies a (gesture, command) pair independent of when or how
// often it was bound.
func Fingerprint(action gesture.Action, command string) string {
	sum := blake3.Sum256([]byte(action.String() + "\x00" + command))
	return "blake3:" + hex.EncodeToString(sum[:])
}
