package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iniwex5/milenage-go/pkg/logger"
	"github.com/iniwex5/milenage-go/pkg/milenage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config 软件 SIM 配置，OP 与 OPc 二选一
type Config struct {
	IMSI string
	K    []byte
	OP   []byte
	OPc  []byte
	SQN  uint64 // 初始 SQN_MS

	Delta     uint64 // 0 使用 DefaultDelta
	Constants *milenage.Constants
	Logger    *zap.Logger
}

// Validate 一次性报告所有配置错误
func (c *Config) Validate() error {
	var err error
	if c.IMSI == "" {
		err = multierr.Append(err, errors.New("IMSI 不能为空"))
	}
	if len(c.K) != 16 {
		err = multierr.Append(err, fmt.Errorf("K: %w", milenage.ErrKeyLength))
	}
	switch {
	case c.OP == nil && c.OPc == nil:
		err = multierr.Append(err, errors.New("必须设置 OP 或 OPc"))
	case c.OP != nil && c.OPc != nil:
		err = multierr.Append(err, errors.New("OP 和 OPc 不能同时设置"))
	case c.OP != nil && len(c.OP) != 16:
		err = multierr.Append(err, milenage.ErrOPLength)
	case c.OPc != nil && len(c.OPc) != 16:
		err = multierr.Append(err, milenage.ErrOPcLength)
	}
	if c.SQN > milenage.MaxSQN {
		err = multierr.Append(err, fmt.Errorf("SQN 超过 48 位: %#x", c.SQN))
	}
	return err
}

// SoftSIM 软件 SIM 实现 (使用 Milenage 算法)
// 不需要物理 SIM 卡，用于测试或特殊场景
type SoftSIM struct {
	imsi string
	sqn  *SQNManager
	log  *zap.Logger

	mu     sync.Mutex // 串行化对 kernel 的访问
	kernel *milenage.Kernel
	closed bool
}

var _ SIMProvider = (*SoftSIM)(nil)

// NewSoftSIM 创建软件 SIM
func NewSoftSIM(cfg Config) (*SoftSIM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("SoftSIM 配置无效: %w", err)
	}

	k, err := milenage.NewWithConfig(cfg.K, milenage.Config{Constants: cfg.Constants})
	if err != nil {
		return nil, err
	}
	if cfg.OPc != nil {
		err = k.SetOPc(cfg.OPc)
	} else {
		err = k.SetOP(cfg.OP)
	}
	if err != nil {
		return nil, err
	}

	l := cfg.Logger
	if l == nil {
		l = logger.Named("softsim")
	}
	delta := cfg.Delta
	if delta == 0 {
		delta = DefaultDelta
	}

	return &SoftSIM{
		imsi:   cfg.IMSI,
		kernel: k,
		sqn:    NewSQNManager(cfg.SQN, delta),
		log:    l.With(logger.IMSI(cfg.IMSI)),
	}, nil
}

// GetIMSI 返回 IMSI
func (s *SoftSIM) GetIMSI() (string, error) {
	return s.imsi, nil
}

// CalculateAKA 执行 USIM 侧 AKA 认证
// MAC 校验失败返回 ErrAuthFailed；SQN 不新鲜时返回 AUTS 和 ErrSyncFailure
func (s *SoftSIM) CalculateAKA(rand, autn []byte) (res, ck, ik, auts []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, nil, nil, ErrSIMClosed
	}

	sqnBytes, _, err := s.kernel.VerifyAUTN(rand, autn)
	if err != nil {
		if errors.Is(err, milenage.ErrMACFailure) {
			s.log.Warn("AUTN MAC 校验失败", logger.Hex("rand", rand))
			return nil, nil, nil, nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		return nil, nil, nil, nil, err
	}
	sqn, err := milenage.DecodeSQN(sqnBytes)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if !s.sqn.Accept(sqn) {
		sqnMS := s.sqn.Highest()
		auts, err = s.kernel.GenerateAUTS(rand, milenage.EncodeSQN(sqnMS))
		if err != nil {
			return nil, nil, nil, nil, err
		}
		s.log.Warn("SQN 不同步，请求重同步",
			zap.Uint64("sqn", sqn),
			zap.Uint64("sqn_ms", sqnMS))
		return nil, nil, nil, auts, ErrSyncFailure
	}

	res, ck, ik, _, err = s.kernel.F2345(rand)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	s.log.Debug("AKA 认证成功",
		zap.Uint64("sqn", sqn),
		logger.Secret("ck", ck),
		logger.Secret("ik", ik))
	return res, ck, ik, nil, nil
}

// Close 关闭后 CalculateAKA 返回 ErrSIMClosed
func (s *SoftSIM) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// SetSQN 设置 SQN_MS
func (s *SoftSIM) SetSQN(sqn uint64) {
	s.sqn.Reset(sqn)
}

// GetSQN 获取 SQN_MS
func (s *SoftSIM) GetSQN() uint64 {
	return s.sqn.Highest()
}
