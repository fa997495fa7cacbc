package xlogconf_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/logkit/pkg/xappend"
	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogconf"
	"github.com/omeyang/logkit/pkg/xlogger"
)

func newTestLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	logger, err := xlogger.New(xappend.Discard, xlogger.WithLevel(xlevel.Info))
	require.NoError(t, err)
	return logger
}

func TestWatch_Validation(t *testing.T) {
	logger := newTestLogger(t)

	t.Run("empty path", func(t *testing.T) {
		_, err := xlogconf.Watch("", logger, nil)
		assert.ErrorIs(t, err, xlogconf.ErrEmptyPath)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := xlogconf.Watch("log.yaml", nil, nil)
		assert.ErrorIs(t, err, xlogconf.ErrNilLogger)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := xlogconf.Watch("log.toml", logger, nil)
		assert.ErrorIs(t, err, xlogconf.ErrUnsupportedFormat)
	})
}

func TestWatch_AppliesNewLevel(t *testing.T) {
	path := writeConfig(t, "log.yaml", "level: info\n")
	logger := newTestLogger(t)

	reloaded := make(chan xlogconf.Config, 4)
	watcher, err := xlogconf.Watch(path, logger, func(cfg xlogconf.Config, err error) {
		if err == nil {
			reloaded <- cfg
		}
	}, xlogconf.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { assert.NoError(t, watcher.Stop()) }()

	watcher.StartAsync()
	// 让监视循环先于写入事件就绪
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("level: error\n"), 0o600))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "error", cfg.Level)
		assert.Equal(t, xlevel.Error, logger.Level())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}
}

func TestWatch_ReloadErrorKeepsLevel(t *testing.T) {
	path := writeConfig(t, "log.yaml", "level: info\n")
	logger := newTestLogger(t)

	failed := make(chan error, 4)
	watcher, err := xlogconf.Watch(path, logger, func(_ xlogconf.Config, err error) {
		if err != nil {
			failed <- err
		}
	}, xlogconf.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { assert.NoError(t, watcher.Stop()) }()

	watcher.StartAsync()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("level: trace\n"), 0o600))

	select {
	case err := <-failed:
		assert.ErrorIs(t, err, xlevel.ErrUndefinedLevel)
		assert.Equal(t, xlevel.Info, logger.Level())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

// TestWatch_StopWithoutStart 未启动的监视器也持有 fsnotify 的 fd 与
// 后台 goroutine，Stop 必须释放它们（配合 TestMain 的泄漏检查）。
func TestWatch_StopWithoutStart(t *testing.T) {
	path := writeConfig(t, "log.yaml", "level: info\n")
	watcher, err := xlogconf.Watch(path, newTestLogger(t), nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())

	// 停止后不可再启动
	watcher.StartAsync()
	assert.NoError(t, watcher.Stop())
}

func TestWatch_StopIdempotent(t *testing.T) {
	path := writeConfig(t, "log.yaml", "level: info\n")
	watcher, err := xlogconf.Watch(path, newTestLogger(t), nil)
	require.NoError(t, err)

	watcher.StartAsync()
	assert.NoError(t, watcher.Stop())
	// 重复 Stop 与未启动时 Stop 都应无害
	assert.NoError(t, watcher.Stop())
}
