package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "DEBUG", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New 失败: %v", err)
	}
	l.Debug("derived", Secret("ck", []byte{0xb4, 0x0b, 0xa9, 0xa3}), IMSI("001010123456789"))
	_ = l.Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("输出不是 JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "derived" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["ck"] != "b40b****" {
		t.Errorf("ck = %v, want b40b****", entry["ck"])
	}
	if entry["imsi"] != "001010********9" {
		t.Errorf("imsi = %v", entry["imsi"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("缺少 time 字段")
	}
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New 失败: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info 日志未被过滤: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("缺少 warn 日志: %s", out)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(Options{Level: "verbose"}); err == nil {
		t.Error("未知级别应返回错误")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("未知格式应返回错误")
	}
}

func TestInitAndGet(t *testing.T) {
	if err := Init("error", "json"); err != nil {
		t.Fatalf("Init 失败: %v", err)
	}
	if Get().Core().Enabled(-1) {
		t.Error("error 级别下 debug 不应启用")
	}
	if Named("milenage") == nil {
		t.Error("Named 返回 nil")
	}
	Sync()
}

func TestMaskPartial(t *testing.T) {
	tests := []struct {
		in           string
		prefix, suff int
		want         string
	}{
		{"440101234567890", 6, 1, "440101********0"},
		{"abc", 2, 2, "abc"},
		{"465b5ce8", 4, 0, "465b****"},
		{"", 4, 0, ""},
	}
	for _, tt := range tests {
		if got := MaskPartial(tt.in, tt.prefix, tt.suff); got != tt.want {
			t.Errorf("MaskPartial(%q, %d, %d) = %q, want %q", tt.in, tt.prefix, tt.suff, got, tt.want)
		}
	}
}
