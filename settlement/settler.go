package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/OxMarco/Cross-chain-Vault/mailbox"
	"github.com/OxMarco/Cross-chain-Vault/settlement/ledger"
	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/OxMarco/Cross-chain-Vault/settlement/signature"
	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"
)

var (
	// ErrSegmentExecution is returned when a filler-supplied call fails,
	// aborting the whole fill.
	ErrSegmentExecution = errors.New("segment execution failed")
	// ErrUnderfulfilledOutput is returned when a recipient balance did not
	// increase by at least the required output amount.
	ErrUnderfulfilledOutput = errors.New("output underfulfilled")
	// ErrOrderNotFilled is returned when claiming an order the ledger does
	// not record as filled.
	ErrOrderNotFilled = errors.New("order not filled")
	// ErrOrderExpired is returned when an operation runs past the order
	// deadline guarding it.
	ErrOrderExpired = errors.New("order deadline passed")
	// ErrWrongDomain is returned when an operation runs on a domain the
	// order does not belong to.
	ErrWrongDomain = errors.New("wrong settlement domain")
)

// Dispatcher is the outbound side of the cross-domain messaging transport.
type Dispatcher interface {
	Dispatch(source uint64, sender common.Address, destination uint64, recipient common.Address, payload []byte) (common.Hash, error)
}

// Executor runs one filler solution segment.
type Executor interface {
	Execute(ctx context.Context, caller common.Address, seg order.Segment) error
}

// LifecycleMetrics records order lifecycle events.
type LifecycleMetrics interface {
	TrackInitiated(orderHash common.Hash)
	TrackFilled(orderHash common.Hash)
	TrackConfirmed(orderHash common.Hash)
	TrackClaimed(orderHash common.Hash)
}

// Settler is one domain's settlement contract instance. It orchestrates
// initiate, fill, claim and reclaim and handles inbound confirmations.
type Settler struct {
	domainID uint64
	contract common.Address
	// expected settlement instance per remote domain, confirmations from
	// any other (domain, sender) pairing are rejected
	counterparts map[uint64]common.Address

	ledger     *ledger.Ledger
	tokens     *token.Registry
	executor   Executor
	dispatcher Dispatcher
	metrics    LifecycleMetrics

	fillMu  sync.Mutex
	claimMu sync.Mutex
}

func NewSettler(
	domainID uint64,
	contract common.Address,
	counterparts map[uint64]common.Address,
	l *ledger.Ledger,
	tokens *token.Registry,
	executor Executor,
	dispatcher Dispatcher,
	metrics LifecycleMetrics,
) *Settler {
	return &Settler{
		domainID:     domainID,
		contract:     contract,
		counterparts: counterparts,
		ledger:       l,
		tokens:       tokens,
		executor:     executor,
		dispatcher:   dispatcher,
		metrics:      metrics,
	}
}

func (s *Settler) DomainID() uint64 {
	return s.domainID
}

func (s *Settler) Contract() common.Address {
	return s.contract
}

// Resolve decodes an order without touching state.
func (s *Settler) Resolve(o order.Order) (*order.ResolvedOrder, error) {
	return order.Resolve(o)
}

// Status reports the ledger status for an order.
func (s *Settler) Status(o order.Order) (ledger.Status, error) {
	orderHash, err := order.Hash(o)
	if err != nil {
		return ledger.Unfilled, err
	}
	return s.ledger.Status(orderHash), nil
}

// StatusOf reports the ledger status for an order hash.
func (s *Settler) StatusOf(orderHash common.Hash) ledger.Status {
	return s.ledger.Status(orderHash)
}

// Initiate escrows the swapper inputs on the origin domain. The signature
// has to bind the swapper to this exact order and the swapper has to have
// approved the settlement contract for every input beforehand. No ledger
// state beyond the Initiated marker is written, custody itself represents
// the pending escrow.
func (s *Settler) Initiate(ctx context.Context, o order.Order, sig []byte) error {
	if o.OriginDomain != s.domainID {
		return fmt.Errorf("%w: order origin is %d", ErrWrongDomain, o.OriginDomain)
	}

	orderHash, err := order.Hash(o)
	if err != nil {
		return err
	}

	if expired(o.InitiateDeadline) {
		return fmt.Errorf("%w: initiate deadline %d", ErrOrderExpired, o.InitiateDeadline)
	}

	if err := signature.Verify(orderHash, sig, o.Swapper); err != nil {
		return err
	}

	resolved, err := order.Resolve(o)
	if err != nil {
		return err
	}

	snap := s.tokens.Snapshot()
	for _, input := range resolved.SwapperInputs {
		asset, err := s.tokens.Asset(input.Token)
		if err != nil {
			snap.Restore()
			return fmt.Errorf("%w: %v", token.ErrTransfer, err)
		}
		if err := asset.TransferFrom(s.contract, o.Swapper, s.contract, input.Amount); err != nil {
			snap.Restore()
			return err
		}
	}

	if err := s.ledger.MarkInitiated(orderHash); err != nil {
		snap.Restore()
		return err
	}

	s.metrics.TrackInitiated(orderHash)
	log.Info().
		Uint64("domainID", s.domainID).
		Msgf("Initiated order %s", orderHash.Hex())
	return nil
}

// Fill executes a filler solution on the destination domain. Recipient
// balances are snapshotted strictly before any filler action; after every
// segment succeeded each swapper output recipient has to have gained at
// least the required amount, no matter how the filler produced it. On
// success exactly one confirmation message is dispatched to the origin
// domain. Any failure aborts the fill with no observable effect.
func (s *Settler) Fill(ctx context.Context, filler common.Address, o order.Order, fillerData []byte) (*order.ResolvedOrder, error) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	orderHash, err := order.Hash(o)
	if err != nil {
		return nil, err
	}

	if expired(o.FillDeadline) {
		return nil, fmt.Errorf("%w: fill deadline %d", ErrOrderExpired, o.FillDeadline)
	}

	resolved, err := order.Resolve(o)
	if err != nil {
		return nil, err
	}

	fd, err := order.DecodeFillerData(fillerData)
	if err != nil {
		return nil, err
	}

	// pre-state baseline, taken strictly before executing any segment
	baselines := make([]*tokenBaseline, len(resolved.SwapperOutputs))
	for i, output := range resolved.SwapperOutputs {
		asset, err := s.tokens.Asset(output.Token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", token.ErrTransfer, err)
		}
		baselines[i] = &tokenBaseline{
			asset:   asset,
			balance: asset.BalanceOf(output.Recipient),
		}
	}

	snap := s.tokens.Snapshot()
	for i, seg := range fd.Segments {
		if err := s.executor.Execute(ctx, filler, seg); err != nil {
			snap.Restore()
			return nil, fmt.Errorf("%w: segment %d: %v", ErrSegmentExecution, i, err)
		}
	}

	for i, output := range resolved.SwapperOutputs {
		post := baselines[i].asset.BalanceOf(output.Recipient)
		delta := post.Sub(post, baselines[i].balance)
		if delta.Cmp(output.Amount) < 0 {
			snap.Restore()
			return nil, fmt.Errorf("%w: recipient %s got %s of %s, needs %s",
				ErrUnderfulfilledOutput, output.Recipient.Hex(), delta, output.Token.Hex(), output.Amount)
		}
	}

	messageID, err := s.dispatcher.Dispatch(
		s.domainID,
		s.contract,
		o.OriginDomain,
		fd.ConfirmationRecipient,
		orderHash.Bytes(),
	)
	if err != nil {
		snap.Restore()
		return nil, fmt.Errorf("confirmation dispatch failed: %w", err)
	}

	s.metrics.TrackFilled(orderHash)
	log.Info().
		Uint64("domainID", s.domainID).
		Str("messageID", messageID.Hex()).
		Msgf("Filled order %s", orderHash.Hex())
	return resolved, nil
}

// Claim releases the escrowed inputs to the filler outputs once the ledger
// records the order as filled. The ledger entry moves to Claimed before any
// transfer happens, so a reentrant or repeated claim fails.
func (s *Settler) Claim(ctx context.Context, o order.Order) error {
	s.claimMu.Lock()
	defer s.claimMu.Unlock()

	orderHash, err := order.Hash(o)
	if err != nil {
		return err
	}

	if s.ledger.Status(orderHash) != ledger.Filled {
		return fmt.Errorf("%w: order %s is %s", ErrOrderNotFilled, orderHash.Hex(), s.ledger.Status(orderHash))
	}

	resolved, err := order.Resolve(o)
	if err != nil {
		return err
	}

	if err := s.ledger.MarkClaimed(orderHash); err != nil {
		return fmt.Errorf("%w: %v", ErrOrderNotFilled, err)
	}

	snap := s.tokens.Snapshot()
	for _, output := range resolved.FillerOutputs {
		asset, err := s.tokens.Asset(output.Token)
		if err == nil {
			err = asset.Transfer(s.contract, output.Recipient, output.Amount)
		}
		if err != nil {
			snap.Restore()
			if restoreErr := s.ledger.Restore(orderHash, ledger.Filled); restoreErr != nil {
				log.Err(restoreErr).Msgf("Failed rolling back claim of order %s", orderHash.Hex())
			}
			return fmt.Errorf("%w: %v", token.ErrTransfer, err)
		}
	}

	s.metrics.TrackClaimed(orderHash)
	log.Info().
		Uint64("domainID", s.domainID).
		Msgf("Claimed order %s", orderHash.Hex())
	return nil
}

// Reclaim returns an initiated but never filled escrow to the swapper once
// the initiate deadline passed, so escrow cannot get stuck forever.
func (s *Settler) Reclaim(ctx context.Context, o order.Order) error {
	s.claimMu.Lock()
	defer s.claimMu.Unlock()

	orderHash, err := order.Hash(o)
	if err != nil {
		return err
	}

	if !expired(o.InitiateDeadline) {
		return fmt.Errorf("order %s not reclaimable before %d", orderHash.Hex(), o.InitiateDeadline)
	}

	resolved, err := order.Resolve(o)
	if err != nil {
		return err
	}

	if err := s.ledger.MarkReclaimed(orderHash); err != nil {
		return err
	}

	snap := s.tokens.Snapshot()
	for _, input := range resolved.SwapperInputs {
		asset, err := s.tokens.Asset(input.Token)
		if err == nil {
			err = asset.Transfer(s.contract, o.Swapper, input.Amount)
		}
		if err != nil {
			snap.Restore()
			if restoreErr := s.ledger.Restore(orderHash, ledger.Initiated); restoreErr != nil {
				log.Err(restoreErr).Msgf("Failed rolling back reclaim of order %s", orderHash.Hex())
			}
			return fmt.Errorf("%w: %v", token.ErrTransfer, err)
		}
	}

	log.Info().
		Uint64("domainID", s.domainID).
		Msgf("Reclaimed order %s", orderHash.Hex())
	return nil
}

// HandleMessage is the inbound confirmation path, invoked only by the
// mailbox delivery loop. The envelope's claimed origin domain and sender
// have to match the enrolled counterpart instance. Marking is idempotent
// and terminal orders stay untouched, so duplicated or arbitrarily delayed
// delivery is harmless.
func (s *Settler) HandleMessage(m *message.Message) (*proposal.Proposal, error) {
	e, ok := m.Data.(*mailbox.Envelope)
	if !ok {
		return nil, fmt.Errorf("unexpected message data %T", m.Data)
	}

	expected, ok := s.counterparts[e.Source]
	if !ok || expected != e.Sender {
		return nil, fmt.Errorf("unauthenticated confirmation from %s on domain %d", e.Sender.Hex(), e.Source)
	}
	if e.Recipient != s.contract {
		return nil, fmt.Errorf("confirmation addressed to %s, not this instance", e.Recipient.Hex())
	}
	if len(e.Payload) != common.HashLength {
		return nil, fmt.Errorf("confirmation payload has %d bytes", len(e.Payload))
	}

	orderHash := common.BytesToHash(e.Payload)
	if err := s.ledger.MarkFilled(orderHash); err != nil {
		return nil, err
	}

	s.metrics.TrackConfirmed(orderHash)
	log.Info().
		Uint64("domainID", s.domainID).
		Msgf("Confirmed order %s", orderHash.Hex())
	return nil, nil
}

type tokenBaseline struct {
	asset   *token.Asset
	balance *big.Int
}

func expired(deadline uint64) bool {
	// nolint:gosec
	return deadline != 0 && time.Now().Unix() > int64(deadline)
}
