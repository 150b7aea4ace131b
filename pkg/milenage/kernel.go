// Package milenage 实现 3GPP TS 35.206 Milenage 算法集 (f1, f1*, f2, f3, f4, f5, f5*)
//
// 使用方法:
//
//	k, err := milenage.New(key)
//	err = k.SetOP(op) // 或 k.SetOPc(opc)
//	macA, err := k.F1(rand, sqn, amf)
//	res, ck, ik, ak, err := k.F2345(rand)
//
// Kernel 不包含锁。OPc 稳定后的派生调用可以并发执行，
// 但 SetOP/SetOPc 与派生调用并发时必须由调用方串行化
// (例如每个会话一个 Kernel，或在修改 OP 时加外部互斥)。
package milenage

import "fmt"

// Config 内核的可替换部分，nil 字段使用默认值
type Config struct {
	Constants *Constants
	Cipher    BlockCipher
}

// Kernel 单个用户的 Milenage 计算实例
type Kernel struct {
	key    [16]byte
	opc    [16]byte
	hasOPc bool

	consts Constants
	cipher BlockCipher
}

// New 使用默认常量和 AES-128 创建内核，调用派生函数前必须先设置 OP 或 OPc
func New(key []byte) (*Kernel, error) {
	return NewWithConfig(key, Config{})
}

// NewWithConfig 创建使用自定义常量或分组密码的内核
func NewWithConfig(key []byte, cfg Config) (*Kernel, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("%w: got %d", ErrKeyLength, len(key))
	}

	k := &Kernel{
		consts: DefaultConstants(),
		cipher: cfg.Cipher,
	}
	if cfg.Constants != nil {
		if err := cfg.Constants.Validate(); err != nil {
			return nil, err
		}
		k.consts = *cfg.Constants
	}
	if k.cipher == nil {
		k.cipher = AES128{}
	}
	copy(k.key[:], key)
	return k, nil
}

// SetOP 设置运营商变体配置字段并计算 OPc = E_K(OP) ⊕ OP，覆盖之前的 OPc
func (k *Kernel) SetOP(op []byte) error {
	if len(op) != 16 {
		return fmt.Errorf("%w: got %d", ErrOPLength, len(op))
	}
	enc, err := k.enc(op)
	if err != nil {
		return err
	}
	copy(k.opc[:], xor16(enc, op))
	k.hasOPc = true
	return nil
}

// SetOPc 直接设置预计算的 OPc，不会校验它与 KEY 是否匹配
func (k *Kernel) SetOPc(opc []byte) error {
	if len(opc) != 16 {
		return fmt.Errorf("%w: got %d", ErrOPcLength, len(opc))
	}
	copy(k.opc[:], opc)
	k.hasOPc = true
	return nil
}

// OPc 返回当前 OPc 的副本
func (k *Kernel) OPc() ([]byte, error) {
	if !k.hasOPc {
		return nil, ErrNotInitialized
	}
	return append([]byte(nil), k.opc[:]...), nil
}

// Ready 报告 OP/OPc 是否已设置
func (k *Kernel) Ready() bool {
	return k.hasOPc
}

// F1 计算网络认证码 MAC-A (8 字节)
func (k *Kernel) F1(rand, sqn, amf []byte) ([]byte, error) {
	out, err := k.stepA(rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	return out[0:8], nil
}

// F1Star 计算重同步认证码 MAC-S (8 字节)
func (k *Kernel) F1Star(rand, sqn, amf []byte) ([]byte, error) {
	out, err := k.stepA(rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	return out[8:16], nil
}

// F1All 一次计算同时返回 MAC-A 和 MAC-S
func (k *Kernel) F1All(rand, sqn, amf []byte) (macA, macS []byte, err error) {
	out, err := k.stepA(rand, sqn, amf)
	if err != nil {
		return nil, nil, err
	}
	return out[0:8:8], out[8:16], nil
}

// F2 计算响应 RES (8 字节)
func (k *Kernel) F2(rand []byte) ([]byte, error) {
	res, _, err := k.F2F5(rand)
	return res, err
}

// F3 计算加密密钥 CK
func (k *Kernel) F3(rand []byte) ([]byte, error) {
	return k.single(rand, 2)
}

// F4 计算完整性密钥 IK
func (k *Kernel) F4(rand []byte) ([]byte, error) {
	return k.single(rand, 3)
}

// F5 计算匿名密钥 AK (6 字节)
func (k *Kernel) F5(rand []byte) ([]byte, error) {
	_, ak, err := k.F2F5(rand)
	return ak, err
}

// F5Star 计算重同步用的匿名密钥 AK* (6 字节)
func (k *Kernel) F5Star(rand []byte) ([]byte, error) {
	out, err := k.single(rand, 4)
	if err != nil {
		return nil, err
	}
	return out[0:6], nil
}

// F2F5 共享一次 OUT2 计算，返回 RES 和 AK
func (k *Kernel) F2F5(rand []byte) (res, ak []byte, err error) {
	out, err := k.single(rand, 1)
	if err != nil {
		return nil, nil, err
	}
	return out[8:16], out[0:6:6], nil
}

// F2345 共享 step 0，返回 RES, CK, IK, AK
func (k *Kernel) F2345(rand []byte) (res, ck, ik, ak []byte, err error) {
	temp, err := k.step0(rand)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	var outs [3][]byte
	for i := range outs {
		if outs[i], err = k.stepX(temp, i+1); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return outs[0][8:16], outs[1], outs[2], outs[0][0:6:6], nil
}

func (k *Kernel) single(rand []byte, idx int) ([]byte, error) {
	temp, err := k.step0(rand)
	if err != nil {
		return nil, err
	}
	return k.stepX(temp, idx)
}

func (k *Kernel) enc(block []byte) ([]byte, error) {
	out, err := k.cipher.Encrypt(k.key[:], block)
	if err != nil {
		return nil, fmt.Errorf("milenage: block cipher: %w", err)
	}
	if len(out) != BlockSize {
		return nil, fmt.Errorf("milenage: block cipher returned %d bytes: %w", len(out), ErrLengthMismatch)
	}
	return out, nil
}

func (k *Kernel) checkRAND(rand []byte) error {
	if !k.hasOPc {
		return ErrNotInitialized
	}
	if len(rand) != 16 {
		return fmt.Errorf("%w: got %d", ErrRANDLength, len(rand))
	}
	return nil
}

// step0 TEMP = E_K(RAND ⊕ OPc)
func (k *Kernel) step0(rand []byte) ([]byte, error) {
	if err := k.checkRAND(rand); err != nil {
		return nil, err
	}
	return k.enc(xor16(rand, k.opc[:]))
}

// stepA OUT1 = E_K(rot(IN1 ⊕ OPc, r1) ⊕ c1 ⊕ TEMP) ⊕ OPc
// IN1 = SQN || AMF || SQN || AMF
func (k *Kernel) stepA(rand, sqn, amf []byte) ([]byte, error) {
	if err := k.checkRAND(rand); err != nil {
		return nil, err
	}
	if len(sqn) != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrSQNLength, len(sqn))
	}
	if len(amf) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAMFLength, len(amf))
	}

	in1 := make([]byte, 0, BlockSize)
	in1 = append(in1, sqn...)
	in1 = append(in1, amf...)
	in1 = append(in1, sqn...)
	in1 = append(in1, amf...)

	tmp, err := RotateLeft128(xor16(in1, k.opc[:]), k.consts.R[0])
	if err != nil {
		return nil, err
	}
	temp, err := k.step0(rand)
	if err != nil {
		return nil, err
	}
	tmp, err = k.enc(xor16(xor16(tmp, k.consts.C[0][:]), temp))
	if err != nil {
		return nil, err
	}
	return xor16(tmp, k.opc[:]), nil
}

// stepX OUTn = E_K(rot(TEMP ⊕ OPc, rn) ⊕ cn) ⊕ OPc, idx 1..4 对应 OUT2..OUT5
func (k *Kernel) stepX(temp []byte, idx int) ([]byte, error) {
	tmp, err := RotateLeft128(xor16(temp, k.opc[:]), k.consts.R[idx])
	if err != nil {
		return nil, err
	}
	tmp, err = k.enc(xor16(tmp, k.consts.C[idx][:]))
	if err != nil {
		return nil, err
	}
	return xor16(tmp, k.opc[:]), nil
}
