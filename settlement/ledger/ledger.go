package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidTransition is returned when an order status change is not
// allowed from the order's current status.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status tracks an order through its lifecycle. Claimed and Reclaimed are
// terminal and recorded explicitly so a replayed confirmation or claim can
// never reinterpret a settled order as unfilled.
type Status uint8

const (
	// Unfilled means the ledger holds no entry for the order.
	Unfilled Status = iota
	// Initiated means the swapper inputs are in escrow custody.
	Initiated
	// Filled means the destination domain confirmed fulfillment and the
	// escrow is claimable.
	Filled
	// Claimed means the filler collected the escrow.
	Claimed
	// Reclaimed means the swapper recovered an expired escrow.
	Reclaimed
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case Unfilled:
		return "Unfilled"
	case Initiated:
		return "Initiated"
	case Filled:
		return "Filled"
	case Claimed:
		return "Claimed"
	case Reclaimed:
		return "Reclaimed"
	default:
		return "Unknown"
	}
}

func (s Status) terminal() bool {
	return s == Claimed || s == Reclaimed
}

// KeyValueReaderWriter is the persistence boundary of the ledger, matching
// the sygma-core lvldb store.
type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// Ledger records per-order settlement status keyed by order hash. It is the
// only persistent state of the settlement core besides domain identity.
type Ledger struct {
	mu sync.Mutex
	kv KeyValueReaderWriter
}

func NewLedger(kv KeyValueReaderWriter) *Ledger {
	return &Ledger{kv: kv}
}

// Status returns the recorded status for the order hash. A missing entry
// reads as Unfilled.
func (l *Ledger) Status(orderHash common.Hash) Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status(orderHash)
}

// MarkInitiated transitions an order into escrow custody. Initiating twice
// fails, which is the replay guard for initiate.
func (l *Ledger) MarkInitiated(orderHash common.Hash) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.status(orderHash)
	if current != Unfilled {
		return fmt.Errorf("%w: order %s is %s", ErrInvalidTransition, orderHash.Hex(), current)
	}
	return l.set(orderHash, Initiated)
}

// MarkFilled records a confirmed fulfillment. It is idempotent: repeated
// confirmations for a filled order are a no-op, and confirmations arriving
// after a terminal status leave the ledger untouched.
func (l *Ledger) MarkFilled(orderHash common.Hash) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.status(orderHash)
	if current == Filled || current.terminal() {
		return nil
	}
	return l.set(orderHash, Filled)
}

// MarkClaimed settles a filled order. Only a Filled order can be claimed,
// so a second claim of the same order fails.
func (l *Ledger) MarkClaimed(orderHash common.Hash) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.status(orderHash)
	if current != Filled {
		return fmt.Errorf("%w: order %s is %s", ErrInvalidTransition, orderHash.Hex(), current)
	}
	return l.set(orderHash, Claimed)
}

// MarkReclaimed returns an expired escrow to the swapper. Only an order
// that was initiated and never filled can be reclaimed.
func (l *Ledger) MarkReclaimed(orderHash common.Hash) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.status(orderHash)
	if current != Initiated {
		return fmt.Errorf("%w: order %s is %s", ErrInvalidTransition, orderHash.Hex(), current)
	}
	return l.set(orderHash, Reclaimed)
}

// Restore overwrites the recorded status without transition checks. It is
// the rollback path used by the settlement engine when an operation aborts
// after its status write, keeping operations atomic.
func (l *Ledger) Restore(orderHash common.Hash, s Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set(orderHash, s)
}

func (l *Ledger) status(orderHash common.Hash) Status {
	v, err := l.kv.GetByKey(key(orderHash))
	if err != nil || len(v) != 1 {
		return Unfilled
	}
	return Status(v[0])
}

func (l *Ledger) set(orderHash common.Hash, s Status) error {
	return l.kv.SetByKey(key(orderHash), []byte{byte(s)})
}

func key(orderHash common.Hash) []byte {
	return append([]byte("order:"), orderHash.Bytes()...)
}
