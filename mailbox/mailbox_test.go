package mailbox_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/OxMarco/Cross-chain-Vault/mailbox"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"
)

var (
	originSettlement      = common.HexToAddress("0x1886a1E8057C10F20c7386576a6a0716B20B2734")
	destinationSettlement = common.HexToAddress("0x6FFc5848C46319e7c6d48f56ca2152b213D4535f")
)

type captureHandler struct {
	mu        sync.Mutex
	envelopes []*mailbox.Envelope
}

func (h *captureHandler) HandleMessage(m *message.Message) (*proposal.Proposal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.envelopes = append(h.envelopes, m.Data.(*mailbox.Envelope))
	return nil, nil
}

func (h *captureHandler) received() []*mailbox.Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]*mailbox.Envelope(nil), h.envelopes...)
}

type MailboxTestSuite struct {
	suite.Suite

	mailbox *mailbox.Mailbox
	handler *captureHandler
}

func TestRunMailboxTestSuite(t *testing.T) {
	suite.Run(t, new(MailboxTestSuite))
}

func (s *MailboxTestSuite) SetupTest() {
	s.mailbox = mailbox.NewMailbox()
	s.handler = new(captureHandler)

	originMh := message.NewMessageHandler()
	originMh.RegisterMessageHandler(mailbox.ConfirmationMessage, s.handler)
	s.mailbox.Enroll(1, originSettlement, originMh)
	s.mailbox.Enroll(2, destinationSettlement, message.NewMessageHandler())
}

func (s *MailboxTestSuite) Test_Dispatch_UnenrolledSender() {
	_, err := s.mailbox.Dispatch(2, originSettlement, 1, originSettlement, []byte{0x01})
	s.NotNil(err)
}

func (s *MailboxTestSuite) Test_Dispatch_UnknownDestination() {
	_, err := s.mailbox.Dispatch(2, destinationSettlement, 9, originSettlement, []byte{0x01})
	s.NotNil(err)
}

func (s *MailboxTestSuite) Test_Dispatch_DeliversToOrigin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.mailbox.Start(ctx)

	payload := common.HexToHash("0xaa").Bytes()
	id, err := s.mailbox.Dispatch(2, destinationSettlement, 1, originSettlement, payload)
	s.Nil(err)
	s.NotEqual(common.Hash{}, id)

	s.Eventually(func() bool {
		return len(s.handler.received()) == 1
	}, time.Second, time.Millisecond*10)

	e := s.handler.received()[0]
	s.Equal(uint64(2), e.Source)
	s.Equal(destinationSettlement, e.Sender)
	s.Equal(originSettlement, e.Recipient)
	s.Equal(payload, e.Payload)
	s.Empty(s.mailbox.Pending())
}

func (s *MailboxTestSuite) Test_Deliver_Duplicated() {
	payload := common.HexToHash("0xaa").Bytes()
	_, err := s.mailbox.Dispatch(2, destinationSettlement, 1, originSettlement, payload)
	s.Nil(err)

	// dispatch queues the message, deliver it twice by hand to model the
	// transport redelivering
	e := s.mailbox.Pending()[0]
	msg := &message.Message{
		Source:      e.Source,
		Destination: e.Destination,
		Data:        &e,
		Type:        mailbox.ConfirmationMessage,
		Timestamp:   e.DispatchedAt,
	}
	s.Nil(s.mailbox.Deliver(msg))
	s.Nil(s.mailbox.Deliver(msg))

	s.Len(s.handler.received(), 2)
}

func (s *MailboxTestSuite) Test_Pending_TracksInFlight() {
	_, err := s.mailbox.Dispatch(2, destinationSettlement, 1, originSettlement, []byte{0x01})
	s.Nil(err)

	s.Len(s.mailbox.Pending(), 1)
}
