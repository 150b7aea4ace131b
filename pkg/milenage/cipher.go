package milenage

//go:generate mockgen -source=cipher.go -destination=mock_cipher_test.go -package=milenage

import (
	"crypto/aes"
	"fmt"

	"golang.org/x/sys/cpu"
)

// BlockSize Milenage 中所有分组均为 128 位
const BlockSize = 16

// BlockCipher 单分组、无填充的 128 位密钥置换 (ECB 单块)
// 实现必须是确定性的，并且可以被多个 goroutine 同时调用
type BlockCipher interface {
	Encrypt(key, block []byte) ([]byte, error)
}

// BlockCipherFunc 允许普通函数作为 BlockCipher 使用
type BlockCipherFunc func(key, block []byte) ([]byte, error)

func (f BlockCipherFunc) Encrypt(key, block []byte) ([]byte, error) {
	return f(key, block)
}

// AES128 默认的内核函数 (TS 35.206 中的 Rijndael)
type AES128 struct{}

func (AES128) Encrypt(key, block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("AES-128: 分组必须是 %d 字节, got %d", BlockSize, len(block))
	}
	if len(key) != 16 {
		return nil, fmt.Errorf("AES-128: 密钥必须是 16 字节, got %d", len(key))
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	c.Encrypt(out, block)
	return out, nil
}

// HardwareAES 报告当前 CPU 是否提供 AES 指令
func HardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
