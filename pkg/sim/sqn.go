package sim

import "sync"

// DefaultDelta 允许 SQN 一次跳跃的最大值 (TS 33.102 Annex C.2.1 建议 2^28)
const DefaultDelta = 1 << 28

// SQNManager USIM 侧的序列号检查
// 只接受比已接收最大值更大、且跳跃不超过 Delta 的 SQN
type SQNManager struct {
	mu      sync.Mutex
	highest uint64 // SQN_MS
	delta   uint64 // 0 表示不限制
}

// NewSQNManager 创建 SQN 管理器
func NewSQNManager(initialSQN, delta uint64) *SQNManager {
	return &SQNManager{
		highest: initialSQN,
		delta:   delta,
	}
}

// Accept 检查收到的 SQN，可接受时更新 SQN_MS 并返回 true
// 返回 false 表示需要重同步
func (m *SQNManager) Accept(received uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if received <= m.highest {
		return false
	}
	if m.delta != 0 && received-m.highest > m.delta {
		return false
	}
	m.highest = received
	return true
}

// Highest 返回 SQN_MS
func (m *SQNManager) Highest() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highest
}

// Reset 强制设置 SQN_MS
func (m *SQNManager) Reset(sqn uint64) {
	m.mu.Lock()
	m.highest = sqn
	m.mu.Unlock()
}
