package milenage

import "errors"

var (
	ErrKeyLength      = errors.New("milenage: KEY must be 16 bytes")
	ErrOPLength       = errors.New("milenage: OP must be 16 bytes")
	ErrOPcLength      = errors.New("milenage: OPc must be 16 bytes")
	ErrRANDLength     = errors.New("milenage: RAND must be 16 bytes")
	ErrSQNLength      = errors.New("milenage: SQN must be 6 bytes")
	ErrAMFLength      = errors.New("milenage: AMF must be 2 bytes")
	ErrNotInitialized = errors.New("milenage: OP or OPc not set")

	// ErrLengthMismatch 由 Xor/RotateLeft128 返回，正常调用路径不可达
	ErrLengthMismatch = errors.New("milenage: operand length mismatch")
	ErrRotationRange  = errors.New("milenage: rotation out of range")

	ErrInvalidConstants = errors.New("milenage: invalid constants")

	ErrAUTNLength = errors.New("milenage: AUTN must be 16 bytes")
	ErrAUTSLength = errors.New("milenage: AUTS must be 14 bytes")
	ErrMACFailure = errors.New("milenage: MAC verification failed")
)
