package bridge

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/0xPolygon/swaplayer/log"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// LoopbackSender is an in process Sender. It keeps the handoffs in memory, assigning them
// consecutive sequences starting at 1.
type LoopbackSender struct {
	logger   *log.Logger
	mu       sync.Mutex
	handoffs []Handoff
	byID     map[string]int
}

var _ Sender = (*LoopbackSender)(nil)

func NewLoopbackSender(logger *log.Logger) *LoopbackSender {
	return &LoopbackSender{logger: logger, byID: map[string]int{}}
}

// Send implements Sender
func (s *LoopbackSender) Send(ctx context.Context, handoff Handoff) (Handoff, error) {
	if err := ctx.Err(); err != nil {
		return Handoff{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.byID[handoff.ID]; ok && handoff.ID != "" {
		s.logger.Debugf("handoff %s already sent with sequence %d", handoff.ID, s.handoffs[i].Sequence)
		return s.handoffs[i], nil
	}
	handoff.Sequence = uint64(len(s.handoffs)) + 1
	handoff.Digest = handoffDigest(handoff)
	if handoff.ID != "" {
		s.byID[handoff.ID] = len(s.handoffs)
	}
	s.handoffs = append(s.handoffs, handoff)
	s.logger.Infof("handoff %d sent to chain %d, peer: %s, amount: %d, digest: %s",
		handoff.Sequence, handoff.TargetChain, handoff.Peer, handoff.Amount, handoff.Digest)
	return handoff, nil
}

// Handoffs returns a copy of every handoff sent so far
func (s *LoopbackSender) Handoffs() []Handoff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Handoff(nil), s.handoffs...)
}

func handoffDigest(h Handoff) common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(binary.BigEndian.AppendUint16(nil, uint16(h.TargetChain)))
	hasher.Write(h.Peer.Bytes())
	hasher.Write(binary.BigEndian.AppendUint64(nil, h.Sequence))
	hasher.Write(binary.BigEndian.AppendUint64(nil, h.Amount))
	hasher.Write(h.Payload)
	return common.BytesToHash(hasher.Sum(nil))
}
