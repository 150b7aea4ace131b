// milenage 根据十六进制输入计算 OPc、f1-f5* 以及 AUTN。
//
//	milenage -k 465b5ce8b199b49faa5f0a2ee238a6bc -op cdc202d5123e20f62b6d676ac72cb318 \
//	    -rand 23553cbe9637a89d218ae64dae47bf35 -sqn ff9bb4d0b607 -amf b9b9
package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iniwex5/milenage-go/internal/config"
	"github.com/iniwex5/milenage-go/pkg/logger"
	"github.com/iniwex5/milenage-go/pkg/milenage"
	"go.uber.org/zap"
)

type inputs struct {
	k, op, opc, rand, sqn, amf []byte
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("milenage")

	in, err := parseFlags(args)
	if err != nil {
		return err
	}

	secret := logger.Secret
	if cfg.LogSecrets {
		secret = logger.Hex
	}
	log.Debug("开始计算",
		zap.Bool("hardware_aes", milenage.HardwareAES()),
		secret("k", in.k),
		logger.Hex("rand", in.rand))

	out, err := compute(in)
	if err != nil {
		log.Error("计算失败", zap.Error(err))
		return err
	}
	for _, kv := range out {
		fmt.Fprintf(stdout, "%-5s %x\n", kv.name+":", kv.value)
	}
	return nil
}

func parseFlags(args []string) (*inputs, error) {
	fs := flag.NewFlagSet("milenage", flag.ContinueOnError)
	k := fs.String("k", "", "用户密钥 K (32 hex)")
	op := fs.String("op", "", "运营商 OP (32 hex)")
	opc := fs.String("opc", "", "预计算 OPc (32 hex)，与 -op 二选一")
	rnd := fs.String("rand", "", "RAND (32 hex)，为空时随机生成")
	sqn := fs.String("sqn", "000000000000", "SQN (12 hex)")
	amf := fs.String("amf", "8000", "AMF (4 hex)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if (*op == "") == (*opc == "") {
		return nil, errors.New("必须且只能指定 -op 或 -opc 之一")
	}

	in := &inputs{}
	fields := []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"k", *k, &in.k},
		{"op", *op, &in.op},
		{"opc", *opc, &in.opc},
		{"rand", *rnd, &in.rand},
		{"sqn", *sqn, &in.sqn},
		{"amf", *amf, &in.amf},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		b, err := hex.DecodeString(f.src)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", f.name, err)
		}
		*f.dst = b
	}

	if in.rand == nil {
		in.rand = make([]byte, 16)
		if _, err := rand.Read(in.rand); err != nil {
			return nil, fmt.Errorf("生成 RAND 失败: %w", err)
		}
	}
	return in, nil
}

type output struct {
	name  string
	value []byte
}

func compute(in *inputs) ([]output, error) {
	k, err := milenage.New(in.k)
	if err != nil {
		return nil, err
	}
	if in.opc != nil {
		err = k.SetOPc(in.opc)
	} else {
		err = k.SetOP(in.op)
	}
	if err != nil {
		return nil, err
	}

	opc, err := k.OPc()
	if err != nil {
		return nil, err
	}
	macA, macS, err := k.F1All(in.rand, in.sqn, in.amf)
	if err != nil {
		return nil, err
	}
	res, ck, ik, ak, err := k.F2345(in.rand)
	if err != nil {
		return nil, err
	}
	akStar, err := k.F5Star(in.rand)
	if err != nil {
		return nil, err
	}
	autn, err := k.GenerateAUTN(in.rand, in.sqn, in.amf)
	if err != nil {
		return nil, err
	}

	return []output{
		{"RAND", in.rand},
		{"OPc", opc},
		{"f1", macA},
		{"f1*", macS},
		{"f2", res},
		{"f3", ck},
		{"f4", ik},
		{"f5", ak},
		{"f5*", akStar},
		{"AUTN", autn},
	}, nil
}
