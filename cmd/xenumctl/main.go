// xenumctl 是枚举约束注册表（xconstraint）的只读查询工具。
//
// 用法:
//
//	xenumctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json，可选）
//	-o, --output      输出格式: table | json | yaml（默认: table）
//	    --log-level   日志级别: debug | info | warn | error（默认: warn）
//	    --log-format  日志格式: text | json（默认: text）
//
// 命令:
//
//	list                              列出全部枚举
//	show <枚举>                       按声明顺序列出成员
//	value <枚举> <键>                 查询成员值
//	contains <枚举> <键> <值>         范围包含判断（IPv4Purpose 支持点分地址）
//	classify <IPv4 地址>              列出地址命中的全部 IPv4Purpose
//	locales                           列出全部语言区域代码（含别名重复）
//	fingerprint                       输出注册表内容摘要
//
// 退出码:
//
//	0: 命令执行成功（contains 命令: 值在范围内）
//	1: 命令执行失败、未知成员，或 contains 判定为不在范围内
//	2: 参数错误（缺少参数、非法值、未知命令等）
//
// 示例:
//
//	xenumctl list
//	xenumctl show PortRange -o json
//	xenumctl value DSNType POSTGRES
//	xenumctl contains PortRange WELL_KNOWN 80
//	xenumctl contains IPv4Purpose LOOBACK 127.0.0.1
//	xenumctl classify 192.0.0.8
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run 执行命令并映射退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := createApp(stdout, stderr)

	if err := cmd.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// createApp 创建 CLI 应用，stdout 接收命令输出，stderr 接收日志与错误。
func createApp(stdout, stderr io.Writer) *cli.Command {
	a := newApp(stdout)

	return &cli.Command{
		Name:      "xenumctl",
		Usage:     "枚举约束注册表查询工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
				Sources: cli.EnvVars("XENUMCTL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式: table | json | yaml",
				Value:   outputTable,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别: debug | info | warn | error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式: text | json",
				Value: "text",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return ctx, err
			}
			logger, err := newLogger(stderr, cfg.Log)
			if err != nil {
				return ctx, &usageError{msg: err.Error()}
			}
			a.output = cfg.Output
			a.log = logger
			a.log.Debug("config resolved",
				"output", cfg.Output, "log_level", cfg.Log.Level, "config", cmd.String("config"))
			return ctx, nil
		},
		// 无子命令时等价于 list；多余参数视为未知命令。
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return usagef("未知命令: %s", cmd.Args().First())
			}
			return a.cmdList()
		},
		Commands: createCommands(a),
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error()}
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, _ error) {},
		Authors: []any{
			"XKit Team",
		},
	}
}

// resolveConfig 依次应用默认值、配置文件和显式设置的命令行参数。
func resolveConfig(cmd *cli.Command) (config, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		if errors.Is(err, errUnsupportedConfig) {
			return cfg, &usageError{msg: err.Error()}
		}
		return cfg, err
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = strings.ToLower(cmd.String("log-format"))
	}
	if err := cfg.normalize(); err != nil {
		return cfg, &usageError{msg: err.Error()}
	}
	return cfg, nil
}
