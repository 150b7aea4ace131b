package milenage

import (
	"crypto/subtle"
	"fmt"
)

const (
	AUTNSize = 16
	AUTSSize = 14
)

// resyncAMF 重同步时 f1* 使用的固定 AMF (TS 33.102 §6.3.3)
var resyncAMF = []byte{0x00, 0x00}

// GenerateAUTN 生成认证令牌
// AUTN = (SQN ⊕ AK) || AMF || MAC-A
func (k *Kernel) GenerateAUTN(rand, sqn, amf []byte) ([]byte, error) {
	macA, err := k.F1(rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	ak, err := k.F5(rand)
	if err != nil {
		return nil, err
	}
	concealed, err := Xor(sqn, ak)
	if err != nil {
		return nil, err
	}

	autn := make([]byte, 0, AUTNSize)
	autn = append(autn, concealed...)
	autn = append(autn, amf...)
	autn = append(autn, macA...)
	return autn, nil
}

// VerifyAUTN 用 AK 还原 SQN 并校验 MAC-A，成功时返回 SQN 和 AMF
// SQN 是否新鲜由调用方判断 (见 sim.SQNManager)
func (k *Kernel) VerifyAUTN(rand, autn []byte) (sqn, amf []byte, err error) {
	if err := k.checkRAND(rand); err != nil {
		return nil, nil, err
	}
	if len(autn) != AUTNSize {
		return nil, nil, fmt.Errorf("%w: got %d", ErrAUTNLength, len(autn))
	}

	ak, err := k.F5(rand)
	if err != nil {
		return nil, nil, err
	}
	if sqn, err = Xor(autn[0:6], ak); err != nil {
		return nil, nil, err
	}
	amf = append([]byte(nil), autn[6:8]...)

	xmac, err := k.F1(rand, sqn, amf)
	if err != nil {
		return nil, nil, err
	}
	if subtle.ConstantTimeCompare(xmac, autn[8:16]) != 1 {
		return nil, nil, fmt.Errorf("%w: MAC-A", ErrMACFailure)
	}
	return sqn, amf, nil
}

// GenerateAUTS 构建重同步参数 (USIM 侧)
// AUTS = (SQN_MS ⊕ AK*) || MAC-S
func (k *Kernel) GenerateAUTS(rand, sqnMS []byte) ([]byte, error) {
	macS, err := k.F1Star(rand, sqnMS, resyncAMF)
	if err != nil {
		return nil, err
	}
	akStar, err := k.F5Star(rand)
	if err != nil {
		return nil, err
	}
	concealed, err := Xor(sqnMS, akStar)
	if err != nil {
		return nil, err
	}

	auts := make([]byte, 0, AUTSSize)
	auts = append(auts, concealed...)
	auts = append(auts, macS...)
	return auts, nil
}

// ResyncSQN 从 AUTS 中还原 SQN_MS 并校验 MAC-S (网络侧)
func (k *Kernel) ResyncSQN(rand, auts []byte) ([]byte, error) {
	if err := k.checkRAND(rand); err != nil {
		return nil, err
	}
	if len(auts) != AUTSSize {
		return nil, fmt.Errorf("%w: got %d", ErrAUTSLength, len(auts))
	}

	akStar, err := k.F5Star(rand)
	if err != nil {
		return nil, err
	}
	sqnMS, err := Xor(auts[0:6], akStar)
	if err != nil {
		return nil, err
	}

	xmacS, err := k.F1Star(rand, sqnMS, resyncAMF)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(xmacS, auts[6:14]) != 1 {
		return nil, fmt.Errorf("%w: MAC-S", ErrMACFailure)
	}
	return sqnMS, nil
}
