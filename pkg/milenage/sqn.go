package milenage

import "fmt"

// MaxSQN SQN 为 48 位
const MaxSQN = 1<<48 - 1

// EncodeSQN 将 SQN 编码为 6 字节大端序，超出 48 位的部分被丢弃
func EncodeSQN(sqn uint64) []byte {
	buf := make([]byte, 6)
	buf[0] = byte(sqn >> 40)
	buf[1] = byte(sqn >> 32)
	buf[2] = byte(sqn >> 24)
	buf[3] = byte(sqn >> 16)
	buf[4] = byte(sqn >> 8)
	buf[5] = byte(sqn)
	return buf
}

// DecodeSQN 从 6 字节解码 SQN
func DecodeSQN(data []byte) (uint64, error) {
	if len(data) != 6 {
		return 0, fmt.Errorf("%w: got %d", ErrSQNLength, len(data))
	}
	return uint64(data[0])<<40 | uint64(data[1])<<32 |
		uint64(data[2])<<24 | uint64(data[3])<<16 |
		uint64(data[4])<<8 | uint64(data[5]), nil
}
