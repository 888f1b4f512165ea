package bridge

import (
	"context"
	"fmt"

	"github.com/0xPolygon/swaplayer/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureLength = 65
	// legacy signatures carry 27/28 in v
	legacyVOffset = 27
)

// GuardianVerifier authenticates messages signed by a quorum of guardians
type GuardianVerifier struct {
	logger    *log.Logger
	guardians map[common.Address]struct{}
	quorum    int
}

var _ MessageVerifier = (*GuardianVerifier)(nil)

func NewGuardianVerifier(logger *log.Logger, guardians []common.Address, quorum int) (*GuardianVerifier, error) {
	if quorum <= 0 || quorum > len(guardians) {
		return nil, fmt.Errorf("invalid guardian quorum %d for %d guardians", quorum, len(guardians))
	}
	set := make(map[common.Address]struct{}, len(guardians))
	for _, g := range guardians {
		set[g] = struct{}{}
	}
	return &GuardianVerifier{logger: logger, guardians: set, quorum: quorum}, nil
}

// VerifyMessage implements MessageVerifier
func (v *GuardianVerifier) VerifyMessage(ctx context.Context, fill InboundFill) error {
	digest := MessageDigest(fill)
	signers := make(map[common.Address]struct{}, len(fill.Signatures))
	for i, sig := range fill.Signatures {
		signer, err := recoverSigner(digest, sig)
		if err != nil {
			return fmt.Errorf("signature %d: %w", i, err)
		}
		if _, ok := v.guardians[signer]; !ok {
			v.logger.Debugf("signature %d of message %s is from %s which is not a guardian", i, digest, signer)
			continue
		}
		signers[signer] = struct{}{}
	}
	if len(signers) < v.quorum {
		return fmt.Errorf("%w: %d valid guardian signatures, %d required", ErrQuorumNotReached, len(signers), v.quorum)
	}
	return nil
}

// ReceiptAttester verifies the USDC receipts attested by one of the configured attesters
type ReceiptAttester struct {
	attesters map[common.Address]struct{}
}

var _ Attester = (*ReceiptAttester)(nil)

func NewReceiptAttester(attesters []common.Address) *ReceiptAttester {
	set := make(map[common.Address]struct{}, len(attesters))
	for _, a := range attesters {
		set[a] = struct{}{}
	}
	return &ReceiptAttester{attesters: set}
}

// VerifyReceipt implements Attester. The receipt body must match the receipt header and
// the amount of the fill, and the attestation must be signed over keccak256(body).
func (a *ReceiptAttester) VerifyReceipt(ctx context.Context, fill InboundFill) error {
	body, err := DecodeReceiptBody(fill.Receipt.Body)
	if err != nil {
		return err
	}
	if body.SourceDomain != fill.Receipt.SourceDomain || body.Nonce != fill.Receipt.Nonce {
		return fmt.Errorf("%w: receipt is for domain %d nonce %d, body for domain %d nonce %d",
			ErrReceiptMismatch, fill.Receipt.SourceDomain, fill.Receipt.Nonce, body.SourceDomain, body.Nonce)
	}
	if body.Amount != fill.Amount {
		return fmt.Errorf("%w: receipt amount %d, fill amount %d", ErrReceiptMismatch, body.Amount, fill.Amount)
	}
	signer, err := recoverSigner(crypto.Keccak256Hash(fill.Receipt.Body), fill.Receipt.Attestation)
	if err != nil {
		return err
	}
	if _, ok := a.attesters[signer]; !ok {
		return fmt.Errorf("%w: %s is not an attester", ErrInvalidSignature, signer)
	}
	return nil
}

func recoverSigner(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(sig))
	}
	s := make([]byte, signatureLength)
	copy(s, sig)
	if s[signatureLength-1] >= legacyVOffset {
		s[signatureLength-1] -= legacyVOffset
	}
	pub, err := crypto.SigToPub(hash.Bytes(), s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
