package xlevel_test

import (
	"errors"
	"runtime"
	"sort"
	"testing"

	"github.com/omeyang/logkit/pkg/xlevel"
)

func TestLevelOrder(t *testing.T) {
	// 验证固定全序：DEBUG < INFO < WARN < ERROR < FATAL
	ordered := []xlevel.Level{xlevel.Debug, xlevel.Info, xlevel.Warn, xlevel.Error, xlevel.Fatal}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("rank order broken: %v >= %v", ordered[i-1], ordered[i])
		}
	}

	// 排名唯一
	seen := map[int]bool{}
	for _, l := range ordered {
		if seen[int(l)] {
			t.Errorf("duplicate rank %d", int(l))
		}
		seen[int(l)] = true
	}
}

func TestLevels(t *testing.T) {
	levels := xlevel.Levels()
	if len(levels) != 5 {
		t.Fatalf("Levels() returned %d levels, want 5", len(levels))
	}
	if !sort.SliceIsSorted(levels, func(i, j int) bool { return levels[i] < levels[j] }) {
		t.Errorf("Levels() not in ascending rank order: %v", levels)
	}

	// 返回的切片是副本，修改不影响注册表
	levels[0] = xlevel.Fatal
	if xlevel.Levels()[0] != xlevel.Debug {
		t.Error("Levels() should return a fresh slice each call")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  xlevel.Level
		err   bool
	}{
		// 小写
		{"debug", xlevel.Debug, false},
		{"info", xlevel.Info, false},
		{"warn", xlevel.Warn, false},
		{"error", xlevel.Error, false},
		{"fatal", xlevel.Fatal, false},

		// 大写
		{"DEBUG", xlevel.Debug, false},
		{"FATAL", xlevel.Fatal, false},

		// 混合大小写
		{"Warn", xlevel.Warn, false},
		{"Error", xlevel.Error, false},

		// warning 别名
		{"warning", xlevel.Warn, false},
		{"WARNING", xlevel.Warn, false},

		// TrimSpace
		{" info ", xlevel.Info, false},
		{"\tfatal\n", xlevel.Fatal, false},

		// 无效输入
		{"", xlevel.Info, true},
		{"trace", xlevel.Info, true},
		{"TRACE", xlevel.Info, true},
		{"critical", xlevel.Info, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := xlevel.Parse(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("Parse(%q) should return error", tt.input)
				}
				if !errors.Is(err, xlevel.ErrUndefinedLevel) {
					t.Errorf("Parse(%q) error = %v, want ErrUndefinedLevel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse(%q) error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level xlevel.Level
		want  string
	}{
		{xlevel.Debug, "DEBUG"},
		{xlevel.Info, "INFO"},
		{xlevel.Warn, "WARN"},
		{xlevel.Error, "ERROR"},
		{xlevel.Fatal, "FATAL"},
		{xlevel.Level(-1), "LEVEL(-1)"},
		{xlevel.Level(5), "LEVEL(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_Valid(t *testing.T) {
	for _, l := range xlevel.Levels() {
		if !l.Valid() {
			t.Errorf("%v.Valid() = false, want true", l)
		}
	}
	for _, l := range []xlevel.Level{-1, 5, 100} {
		if l.Valid() {
			t.Errorf("Level(%d).Valid() = true, want false", int(l))
		}
	}
}

func TestLevel_MarshalText(t *testing.T) {
	data, err := xlevel.Warn.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	if string(data) != "WARN" {
		t.Errorf("MarshalText() = %q, want %q", data, "WARN")
	}

	// 范围外排名拒绝序列化
	if _, err := xlevel.Level(9).MarshalText(); !errors.Is(err, xlevel.ErrUndefinedLevel) {
		t.Errorf("MarshalText() on invalid rank: error = %v, want ErrUndefinedLevel", err)
	}
}

// TestLevel_RoundTrip 验证 MarshalText/UnmarshalText 往返一致性
func TestLevel_RoundTrip(t *testing.T) {
	for _, level := range xlevel.Levels() {
		data, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", level, err)
		}
		var got xlevel.Level
		if err := got.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", data, err)
		}
		if got != level {
			t.Errorf("round trip: %v -> %q -> %v", level, data, got)
		}
	}

	var l xlevel.Level
	if err := l.UnmarshalText([]byte("nope")); !errors.Is(err, xlevel.ErrUndefinedLevel) {
		t.Errorf("UnmarshalText(nope) error = %v, want ErrUndefinedLevel", err)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		level, err := xlevel.Parse("error")
		runtime.KeepAlive(level)
		runtime.KeepAlive(err)
	}
}
