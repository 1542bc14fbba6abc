// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mailbox

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
)

const (
	// ConfirmationMessage is the message type carrying fulfillment
	// confirmations back to the origin domain.
	ConfirmationMessage = "ConfirmationMessage"

	PENDING_TTL = time.Hour * 24
)

// Envelope is the transport view of one in-flight message. It is handed to
// the destination handler as message data so the handler can verify the
// claimed origin domain and sender pairing.
type Envelope struct {
	ID          common.Hash
	Source      uint64
	Destination uint64
	Sender      common.Address
	Recipient   common.Address
	Payload     []byte

	DispatchedAt time.Time
}

// Mailbox models the one-way authenticated messaging transport between
// domains. Dispatch is fire-and-forget for the caller; delivery happens on
// a separate loop with at-least-once, unordered semantics.
type Mailbox struct {
	mu       sync.RWMutex
	handlers map[uint64]*message.MessageHandler
	senders  map[uint64]common.Address

	msgChan chan []*message.Message
	pending *ttlcache.Cache[common.Hash, Envelope]
	nonce   atomic.Uint64
}

func NewMailbox() *Mailbox {
	pending := ttlcache.New(
		ttlcache.WithTTL[common.Hash, Envelope](PENDING_TTL),
	)
	go pending.Start()

	return &Mailbox{
		handlers: make(map[uint64]*message.MessageHandler),
		senders:  make(map[uint64]common.Address),
		msgChan:  make(chan []*message.Message, 64),
		pending:  pending,
	}
}

// Enroll registers a domain's settlement contract instance and its inbound
// message handler registry. Only enrolled (domain, sender) pairs may
// dispatch, and only enrolled domains receive deliveries.
func (m *Mailbox) Enroll(domainID uint64, settlement common.Address, mh *message.MessageHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[domainID] = mh
	m.senders[domainID] = settlement
}

// Dispatch queues a payload for delivery to recipient on the destination
// domain and returns the transport-assigned message id.
func (m *Mailbox) Dispatch(
	source uint64,
	sender common.Address,
	destination uint64,
	recipient common.Address,
	payload []byte,
) (common.Hash, error) {
	m.mu.RLock()
	enrolled, ok := m.senders[source]
	_, destKnown := m.handlers[destination]
	m.mu.RUnlock()

	if !ok || enrolled != sender {
		return common.Hash{}, fmt.Errorf("sender %s not enrolled on domain %d", sender.Hex(), source)
	}
	if !destKnown {
		return common.Hash{}, fmt.Errorf("unknown destination domain %d", destination)
	}

	e := Envelope{
		Source:       source,
		Destination:  destination,
		Sender:       sender,
		Recipient:    recipient,
		Payload:      payload,
		DispatchedAt: time.Now(),
	}
	e.ID = m.id(&e)

	m.pending.Set(e.ID, e, ttlcache.DefaultTTL)
	m.msgChan <- []*message.Message{
		{
			Source:      source,
			Destination: destination,
			Data:        &e,
			Type:        ConfirmationMessage,
			Timestamp:   e.DispatchedAt,
		},
	}

	log.Debug().
		Uint64("source", source).
		Uint64("destination", destination).
		Msgf("Dispatched message %s", e.ID.Hex())
	return e.ID, nil
}

// Start runs the delivery loop until ctx is done. Handler failures are
// logged and the message is kept pending; redelivery is the operator's
// call, matching the at-least-once transport model.
func (m *Mailbox) Start(ctx context.Context) {
	for {
		select {
		case msgs := <-m.msgChan:
			for _, msg := range msgs {
				m.deliver(msg)
			}
		case <-ctx.Done():
			m.pending.Stop()
			return
		}
	}
}

// Deliver routes a single message to its destination handler. Exposed so
// tests can exercise delayed and duplicated delivery explicitly.
func (m *Mailbox) Deliver(msg *message.Message) error {
	m.mu.RLock()
	mh, ok := m.handlers[msg.Destination]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no handler for domain %d", msg.Destination)
	}

	_, err := mh.HandleMessage(msg)
	if err != nil {
		return err
	}

	if e, ok := msg.Data.(*Envelope); ok {
		m.pending.Delete(e.ID)
	}
	return nil
}

// Pending returns the envelopes dispatched but not yet delivered.
func (m *Mailbox) Pending() []Envelope {
	items := m.pending.Items()
	pending := make([]Envelope, 0, len(items))
	for _, item := range items {
		pending = append(pending, item.Value())
	}
	return pending
}

func (m *Mailbox) deliver(msg *message.Message) {
	err := m.Deliver(msg)
	if err != nil {
		log.Err(err).
			Uint64("destination", msg.Destination).
			Msgf("Failed delivering message")
	}
}

func (m *Mailbox) id(e *Envelope) common.Hash {
	var buf [8]byte
	data := make([]byte, 0, 96+len(e.Payload))
	binary.BigEndian.PutUint64(buf[:], e.Source)
	data = append(data, buf[:]...)
	binary.BigEndian.PutUint64(buf[:], e.Destination)
	data = append(data, buf[:]...)
	data = append(data, e.Sender.Bytes()...)
	data = append(data, e.Recipient.Bytes()...)
	binary.BigEndian.PutUint64(buf[:], m.nonce.Add(1))
	data = append(data, buf[:]...)
	data = append(data, e.Payload...)
	return common.BytesToHash(crypto.Keccak256(data))
}
