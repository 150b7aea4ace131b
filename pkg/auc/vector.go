// Package auc 提供网络侧 (HE/AuC) 的认证向量生成与重同步处理。
package auc

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/iniwex5/milenage-go/pkg/logger"
	"github.com/iniwex5/milenage-go/pkg/milenage"
	"go.uber.org/zap"
)

// IndBits SQN = SEQ || IND，IND 占低 5 位 (TS 33.102 Annex C.3.2)
const IndBits = 5

// Vector 认证向量
type Vector struct {
	RAND []byte // 16 bytes
	AUTN []byte // 16 bytes
	XRES []byte // 8 bytes
	CK   []byte // 16 bytes
	IK   []byte // 16 bytes
}

// Subscriber 单次计算所需的用户参数，不做持久化
type Subscriber struct {
	K   []byte
	OPc []byte
	AMF []byte
	SQN uint64 // 上一次使用的 SQN
}

// Generator 认证向量生成器
type Generator struct {
	Rand      io.Reader // 默认 crypto/rand
	Constants *milenage.Constants
	Logger    *zap.Logger
}

// NewGenerator 使用默认参数创建生成器
func NewGenerator(l *zap.Logger) *Generator {
	if l == nil {
		l = logger.Named("auc")
	}
	return &Generator{Rand: rand.Reader, Logger: l}
}

// NextSQN SEQ 加一，保留 IND
func NextSQN(sqn uint64) (uint64, error) {
	ind := sqn & (1<<IndBits - 1)
	seq := sqn>>IndBits + 1
	next := seq<<IndBits | ind
	if next > milenage.MaxSQN {
		return 0, fmt.Errorf("SQN 溢出: %#x", sqn)
	}
	return next, nil
}

func (g *Generator) log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) kernel(sub Subscriber) (*milenage.Kernel, error) {
	k, err := milenage.NewWithConfig(sub.K, milenage.Config{Constants: g.Constants})
	if err != nil {
		return nil, err
	}
	if err := k.SetOPc(sub.OPc); err != nil {
		return nil, err
	}
	return k, nil
}

// Generate 递增 SQN 并生成新的认证向量，返回新 SQN 供调用方保存
func (g *Generator) Generate(sub Subscriber) (*Vector, uint64, error) {
	next, err := NextSQN(sub.SQN)
	if err != nil {
		return nil, 0, err
	}

	src := g.Rand
	if src == nil {
		src = rand.Reader
	}
	randVal := make([]byte, 16)
	if _, err := io.ReadFull(src, randVal); err != nil {
		return nil, 0, fmt.Errorf("生成 RAND 失败: %w", err)
	}

	v, err := g.GenerateWithRAND(sub, next, randVal)
	if err != nil {
		return nil, 0, err
	}
	return v, next, nil
}

// GenerateWithRAND 使用给定的 SQN 和 RAND 生成认证向量
func (g *Generator) GenerateWithRAND(sub Subscriber, sqn uint64, randVal []byte) (*Vector, error) {
	k, err := g.kernel(sub)
	if err != nil {
		return nil, err
	}

	autn, err := k.GenerateAUTN(randVal, milenage.EncodeSQN(sqn), sub.AMF)
	if err != nil {
		return nil, fmt.Errorf("计算 AUTN 失败: %w", err)
	}
	res, ck, ik, _, err := k.F2345(randVal)
	if err != nil {
		return nil, fmt.Errorf("计算 f2345 失败: %w", err)
	}

	g.log().Debug("生成认证向量",
		zap.Uint64("sqn", sqn),
		logger.Hex("rand", randVal),
		logger.Hex("autn", autn),
		logger.Secret("xres", res))

	return &Vector{
		RAND: append([]byte(nil), randVal...),
		AUTN: autn,
		XRES: res,
		CK:   ck,
		IK:   ik,
	}, nil
}

// Resync 校验 AUTS 中的 MAC-S 并返回 USIM 的 SQN_MS
// 调用方应以 SQN_MS 作为下一次 Generate 的起点
func (g *Generator) Resync(sub Subscriber, randVal, auts []byte) (uint64, error) {
	k, err := g.kernel(sub)
	if err != nil {
		return 0, err
	}
	sqnMS, err := k.ResyncSQN(randVal, auts)
	if err != nil {
		g.log().Warn("AUTS 校验失败", zap.Error(err))
		return 0, err
	}
	sqn, err := milenage.DecodeSQN(sqnMS)
	if err != nil {
		return 0, err
	}
	g.log().Info("重同步完成", zap.Uint64("sqn_ms", sqn))
	return sqn, nil
}
