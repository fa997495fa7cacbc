package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogconf"
	"github.com/omeyang/logkit/pkg/xlogger"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示命令参数错误，映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断是否为 CLI 框架产生的参数错误。
// urfave/cli 的 flag 解析错误与未知命令错误没有专用类型，
// 只能通过 ExitCoder 接口和错误消息识别。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createEmitCommand(),
	}
}

// createCheckCommand 创建 check 子命令（校验配置文件）。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"k"},
		Usage:     "校验配置文件（解析 + 试构建）",
		ArgsUsage: "<配置文件>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "check 命令需要且仅需要一个配置文件路径"}
			}
			return cmdCheck(args[0])
		},
	}
}

// createEmitCommand 创建 emit 子命令（输出演示记录）。
func createEmitCommand() *cli.Command {
	return &cli.Command{
		Name:    "emit",
		Aliases: []string{"e"},
		Usage:   "按配置构建 Logger 并输出记录",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "记录级别 (debug/info/warn/error/fatal)",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "记录内容（空时逐级输出一条演示记录）",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "记录条数",
				Value:   1,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdEmit(
				cmd.String("config"),
				cmd.String("level"),
				cmd.String("message"),
				cmd.Int("count"),
			)
		},
	}
}

// cmdCheck 校验配置文件。
// 设计决策: 校验即试构建——只有完整走一遍 Build（含文件 appender
// 的目录创建与打开）才能发现路径、权限类问题，纯解析校验不够。
// 配置无效时返回非零退出码（通过 exitError），使 CI 脚本能直接判定。
func cmdCheck(path string) error {
	cfg, err := xlogconf.Load(path)
	if err != nil {
		fmt.Printf("配置无效: %v\n", err)
		return &exitError{code: 1}
	}

	logger, cleanup, err := cfg.Build()
	if err != nil {
		fmt.Printf("配置无效: %v\n", err)
		return &exitError{code: 1}
	}
	closeErr := cleanup()

	fmt.Printf("配置有效: %s\n", path)
	fmt.Printf("  级别: %s\n", logger.Level())
	fmt.Printf("  输出: %s\n", outputName(cfg.Output))
	if cfg.Pattern != "" {
		fmt.Printf("  模板: %q\n", cfg.Pattern)
	}
	return closeErr
}

// outputName 输出类型的显示名，空串表示缺省 console。
func outputName(output string) string {
	if output == "" {
		return xlogconf.OutputConsole + " (缺省)"
	}
	return output
}

// cmdEmit 构建 Logger 并输出记录。
func cmdEmit(configPath, levelName, message string, count int) error {
	if count < 1 {
		return &usageError{msg: fmt.Sprintf("无效的记录条数: %d", count)}
	}

	var cfg xlogconf.Config
	if configPath != "" {
		loaded, err := xlogconf.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, cleanup, err := cfg.Build()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cleanup(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "关闭输出失败: %v\n", closeErr)
		}
	}()

	if message == "" {
		return emitPerLevel(logger)
	}

	level := xlevel.Info
	if levelName != "" {
		parsed, err := xlevel.Parse(levelName)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无效的级别: %q", levelName)}
		}
		level = parsed
	}

	for i := 0; i < count; i++ {
		if err := logger.Log(level, message); err != nil {
			return err
		}
	}
	return nil
}

// emitPerLevel 逐级输出一条演示记录，直观展示阈值过滤效果。
func emitPerLevel(logger *xlogger.Logger) error {
	var errs []error
	for _, level := range xlevel.Levels() {
		errs = append(errs, logger.Log(level, "demo record at %s", level))
	}
	return errors.Join(errs...)
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// 当命令阻塞时，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130) // 第二次信号: 强制退出
	}()
}
