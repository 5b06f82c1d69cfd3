package common

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// rlpStringOffset is the short string header base
	rlpStringOffset = 0x80
	// zeroEncoding is the single byte U256 zero is written as. The empty string 0x80 is
	// still accepted on decode.
	zeroEncoding = 0x00
	// maxPayloadLen bounds 256-bit payloads
	maxPayloadLen = 32
)

// EncodeBytes returns the canonical encoding: a 0x80+len header followed by the
// minimal big-endian bytes of the value, or the single byte 0x00 for zero.
func (u U256) EncodeBytes() []byte {
	if u.IsZero() {
		return []byte{zeroEncoding}
	}
	payload := u.v.Bytes()
	out := make([]byte, 1+len(payload))
	out[0] = byte(rlpStringOffset + len(payload))
	copy(out[1:], payload)
	return out
}

// DecodeU256 strictly decodes a buffer produced by EncodeBytes.
func DecodeU256(b []byte) (U256, error) {
	if len(b) == 0 {
		return U256{}, decodeErr("empty input")
	}
	if b[0] == zeroEncoding {
		if len(b) != 1 {
			return U256{}, decodeErr("length mismatch")
		}
		return U256{}, nil
	}
	if b[0] < rlpStringOffset {
		return U256{}, decodeErr("header byte 0x%02x is not a short string length", b[0])
	}
	length := int(b[0]) - rlpStringOffset
	if length > maxPayloadLen {
		return U256{}, decodeErr("length exceeds 32")
	}
	payload := b[1:]
	if len(payload) != length {
		return U256{}, decodeErr("length mismatch")
	}
	if length == 0 {
		return U256{}, nil
	}
	if payload[0] == 0 {
		return U256{}, decodeErr("leading zero byte")
	}
	var u U256
	u.v.SetBytes(payload)
	return u, nil
}

// EncodeRLP implements rlp.Encoder so U256 fields keep their canonical framing
// inside go-ethereum rlp lists.
func (u U256) EncodeRLP(w io.Writer) error {
	_, err := w.Write(u.EncodeBytes())
	return err
}

// DecodeRLP implements rlp.Decoder
func (u *U256) DecodeRLP(s *rlp.Stream) error {
	data, err := s.Raw()
	if err != nil {
		return err
	}
	v, err := DecodeU256(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
