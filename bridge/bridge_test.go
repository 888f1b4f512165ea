package bridge

import (
	"context"
	"crypto/ecdsa"
	"testing"

	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey)
}

func sign(t *testing.T, hash common.Hash, key *ecdsa.PrivateKey) []byte {
	t.Helper()

	sig, err := crypto.Sign(hash.Bytes(), key)
	require.NoError(t, err)
	return sig
}

func testFill() InboundFill {
	body := ReceiptBody{SourceDomain: 3, Nonce: 77, Amount: 1_000_000, MintRecipient: messages.UniversalAddress{9}}
	return InboundFill{
		SourceChain: 5,
		Sender:      messages.UniversalAddress{0xaa},
		Sequence:    12,
		FillType:    Finalized,
		Amount:      1_000_000,
		Payload:     []byte{1, 2, 3},
		Receipt:     Receipt{SourceDomain: 3, Nonce: 77, Body: body.Encode()},
	}
}

func TestFillID(t *testing.T) {
	fill := testFill()
	id := FillID(fill)
	require.Equal(t, id, FillID(fill))

	// fill type and amount are not part of the id
	other := fill
	other.FillType = FastFill
	other.Amount = 1
	require.Equal(t, id, FillID(other))
	require.NotEqual(t, MessageDigest(fill), MessageDigest(other))

	for _, change := range []func(f *InboundFill){
		func(f *InboundFill) { f.SourceChain++ },
		func(f *InboundFill) { f.Sender[31] = 1 },
		func(f *InboundFill) { f.Sequence++ },
		func(f *InboundFill) { f.Payload = append([]byte{}, 1, 2, 4) },
	} {
		changed := testFill()
		change(&changed)
		require.NotEqual(t, id, FillID(changed))
	}
}

func TestReceiptBody(t *testing.T) {
	body := ReceiptBody{SourceDomain: 1, Nonce: 2, Amount: 3, MintRecipient: messages.UniversalAddress{4}}
	decoded, err := DecodeReceiptBody(body.Encode())
	require.NoError(t, err)
	require.Equal(t, body, decoded)

	_, err = DecodeReceiptBody(body.Encode()[1:])
	require.ErrorIs(t, err, ErrInvalidReceiptBody)
}

func TestGuardianVerifier(t *testing.T) {
	key1, guardian1 := newKey(t)
	key2, guardian2 := newKey(t)
	outsiderKey, _ := newKey(t)

	_, err := NewGuardianVerifier(log.GetDefaultLogger(), []common.Address{guardian1}, 2)
	require.Error(t, err)

	verifier, err := NewGuardianVerifier(log.GetDefaultLogger(), []common.Address{guardian1, guardian2}, 2)
	require.NoError(t, err)

	fill := testFill()
	digest := MessageDigest(fill)

	tests := []struct {
		name        string
		signatures  [][]byte
		expectedErr error
	}{
		{
			name:       "quorum",
			signatures: [][]byte{sign(t, digest, key1), sign(t, digest, key2)},
		},
		{
			name: "legacy v",
			signatures: func() [][]byte {
				sig := sign(t, digest, key1)
				sig[64] += 27
				return [][]byte{sig, sign(t, digest, key2)}
			}(),
		},
		{
			name:        "duplicated signer",
			signatures:  [][]byte{sign(t, digest, key1), sign(t, digest, key1)},
			expectedErr: ErrQuorumNotReached,
		},
		{
			name:        "outsider",
			signatures:  [][]byte{sign(t, digest, key1), sign(t, digest, outsiderKey)},
			expectedErr: ErrQuorumNotReached,
		},
		{
			name:        "no signatures",
			expectedErr: ErrQuorumNotReached,
		},
		{
			name:        "malformed signature",
			signatures:  [][]byte{{1, 2, 3}},
			expectedErr: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fill
			f.Signatures = tt.signatures
			err := verifier.VerifyMessage(context.Background(), f)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}

	// tampering with the amount invalidates the signatures
	tampered := fill
	tampered.Signatures = [][]byte{sign(t, digest, key1), sign(t, digest, key2)}
	tampered.Amount++
	require.ErrorIs(t, verifier.VerifyMessage(context.Background(), tampered), ErrQuorumNotReached)
}

func TestReceiptAttester(t *testing.T) {
	attesterKey, attester := newKey(t)
	outsiderKey, _ := newKey(t)
	a := NewReceiptAttester([]common.Address{attester})

	attest := func(f InboundFill, key *ecdsa.PrivateKey) InboundFill {
		f.Receipt.Attestation = sign(t, crypto.Keccak256Hash(f.Receipt.Body), key)
		return f
	}

	require.NoError(t, a.VerifyReceipt(context.Background(), attest(testFill(), attesterKey)))

	err := a.VerifyReceipt(context.Background(), attest(testFill(), outsiderKey))
	require.ErrorIs(t, err, ErrInvalidSignature)

	wrongNonce := testFill()
	wrongNonce.Receipt.Nonce++
	err = a.VerifyReceipt(context.Background(), attest(wrongNonce, attesterKey))
	require.ErrorIs(t, err, ErrReceiptMismatch)

	wrongDomain := testFill()
	wrongDomain.Receipt.SourceDomain++
	err = a.VerifyReceipt(context.Background(), attest(wrongDomain, attesterKey))
	require.ErrorIs(t, err, ErrReceiptMismatch)

	wrongAmount := testFill()
	wrongAmount.Amount++
	err = a.VerifyReceipt(context.Background(), attest(wrongAmount, attesterKey))
	require.ErrorIs(t, err, ErrReceiptMismatch)

	badBody := testFill()
	badBody.Receipt.Body = []byte{1}
	err = a.VerifyReceipt(context.Background(), attest(badBody, attesterKey))
	require.ErrorIs(t, err, ErrInvalidReceiptBody)
}

func TestLoopbackSender(t *testing.T) {
	s := NewLoopbackSender(log.GetDefaultLogger())
	ctx := context.Background()

	h := Handoff{ID: "a", TargetChain: 4, Peer: messages.UniversalAddress{1}, Amount: 10, Payload: []byte{1}}
	first, err := s.Send(ctx, h)
	require.NoError(t, err)
	require.Equal(t, uint64(1), first.Sequence)
	require.Equal(t, handoffDigest(first), first.Digest)

	// same id, same handoff
	again, err := s.Send(ctx, h)
	require.NoError(t, err)
	require.Equal(t, first, again)

	h.ID = "b"
	second, err := s.Send(ctx, h)
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.Sequence)

	handoffs := s.Handoffs()
	require.Len(t, handoffs, 2)
	require.Equal(t, []Handoff{first, second}, handoffs)
	require.NotEqual(t, handoffs[0].Digest, handoffs[1].Digest)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	h.ID = "c"
	_, err = s.Send(cancelled, h)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, s.Handoffs(), 2)
}
