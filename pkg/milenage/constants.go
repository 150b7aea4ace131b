package milenage

import (
	"fmt"

	"go.uber.org/multierr"
)

// Constants 算法变体参数 c1..c5 与 r1..r5 (TS 35.206 §4.1)
// 运营商可以选择非默认值，只要 r 在 [0,128) 范围内
type Constants struct {
	C [5][BlockSize]byte
	R [5]uint
}

// DefaultConstants 返回标准默认值:
// c1 = 0, c2 = 1, c3 = 2, c4 = 4, c5 = 8 (最低字节)
// r1 = 64, r2 = 0, r3 = 32, r4 = 64, r5 = 96
func DefaultConstants() Constants {
	var k Constants
	for i, v := range [5]byte{0, 1, 2, 4, 8} {
		k.C[i][BlockSize-1] = v
	}
	k.R = [5]uint{64, 0, 32, 64, 96}
	return k
}

// Validate 检查所有旋转位数，一次返回全部问题
func (k Constants) Validate() error {
	var err error
	for i, r := range k.R {
		if r >= 128 {
			err = multierr.Append(err, fmt.Errorf("r%d = %d: %w", i+1, r, ErrRotationRange))
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConstants, err)
	}
	return nil
}
