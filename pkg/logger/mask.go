package logger

import (
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
)

// MaskPartial 保留前 keepPrefix 和后 keepSuffix 个字符，其余替换为 '*'
// 字符串过短时原样返回
func MaskPartial(s string, keepPrefix, keepSuffix int) string {
	if len(s) <= keepPrefix+keepSuffix {
		return s
	}
	return s[:keepPrefix] + strings.Repeat("*", len(s)-keepPrefix-keepSuffix) + s[len(s)-keepSuffix:]
}

// MaskIMSI 保留 MCC+MNC (前 6 位) 和最后 1 位
func MaskIMSI(imsi string) string {
	return MaskPartial(imsi, 6, 1)
}

// MaskHex 只保留十六进制的前 4 个字符
func MaskHex(b []byte) string {
	return MaskPartial(hex.EncodeToString(b), 4, 0)
}

// Secret 以掩码形式记录密钥材料 (K, OPc, CK, IK ...)
func Secret(key string, b []byte) zap.Field {
	return zap.String(key, MaskHex(b))
}

// Hex 记录非敏感的字节串 (RAND, AUTN ...)
func Hex(key string, b []byte) zap.Field {
	return zap.String(key, hex.EncodeToString(b))
}

// IMSI 以掩码形式记录 IMSI
func IMSI(imsi string) zap.Field {
	return zap.String("imsi", MaskIMSI(imsi))
}
