package milenage

import (
	"encoding/binary"
	"fmt"
)

// Xor 返回 a ⊕ b，两者长度必须一致
func Xor(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// RotateLeft128 将 16 字节大端整数循环左移 bits 位 (0 <= bits < 128)
func RotateLeft128(data []byte, bits uint) ([]byte, error) {
	if len(data) != BlockSize {
		return nil, fmt.Errorf("%w: rotate input is %d bytes", ErrLengthMismatch, len(data))
	}
	if bits >= 128 {
		return nil, fmt.Errorf("%w: %d", ErrRotationRange, bits)
	}

	hi := binary.BigEndian.Uint64(data[0:8])
	lo := binary.BigEndian.Uint64(data[8:16])
	if bits >= 64 {
		hi, lo = lo, hi
		bits -= 64
	}

	// Go 中移位 64 位结果为 0，bits == 0 时进位项自然消失
	out := make([]byte, BlockSize)
	binary.BigEndian.PutUint64(out[0:8], hi<<bits|lo>>(64-bits))
	binary.BigEndian.PutUint64(out[8:16], lo<<bits|hi>>(64-bits))
	return out, nil
}

// xor16 用于内部已知长度的操作数
func xor16(a, b []byte) []byte {
	out := make([]byte, BlockSize)
	for i := 0; i < BlockSize; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}
