package sim

import "errors"

// SIMProvider 定义了获取 SIM 卡信息和执行 AKA 鉴权的接口
type SIMProvider interface {
	// 获取 IMSI (International Mobile Subscriber Identity)
	GetIMSI() (string, error)

	// 执行 AKA 鉴权
	// rand: 16 bytes 随机数
	// autn: 16 bytes 认证令牌
	// 返回: res, ck, ik; SQN 不同步时返回 auts 和 ErrSyncFailure
	CalculateAKA(rand []byte, autn []byte) (res, ck, ik, auts []byte, err error)

	Close() error
}

var (
	ErrSIMClosed   = errors.New("SIM closed")
	ErrAuthFailed  = errors.New("authentication failed")
	ErrSyncFailure = errors.New("synchronization failure")
)
