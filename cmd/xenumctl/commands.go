package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xfake/pkg/enum/xconstraint"
	"github.com/omeyang/xfake/pkg/enum/xenum"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，main 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app 持有一次命令执行的输出目标与已解析配置。
type app struct {
	out    io.Writer
	output string
	log    *slog.Logger
}

func newApp(out io.Writer) *app {
	return &app{
		out:    out,
		output: outputTable,
		log:    slog.New(slog.DiscardHandler),
	}
}

func (a *app) render(v any, table func(tw *tabwriter.Writer)) error {
	return render(a.out, a.output, v, table)
}

// =============================================================================
// 命令构建
// =============================================================================

func createCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "列出全部枚举",
			Action: func(_ context.Context, _ *cli.Command) error {
				return a.cmdList()
			},
		},
		{
			Name:      "show",
			Usage:     "按声明顺序列出成员",
			ArgsUsage: "<枚举>",
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.NArg() != 1 {
					return usagef("show 命令需要指定枚举名称")
				}
				return a.cmdShow(cmd.Args().Get(0))
			},
		},
		{
			Name:      "value",
			Aliases:   []string{"get"},
			Usage:     "查询成员值",
			ArgsUsage: "<枚举> <键>",
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.NArg() != 2 {
					return usagef("value 命令需要枚举名称和成员键")
				}
				return a.cmdValue(cmd.Args().Get(0), cmd.Args().Get(1))
			},
		},
		{
			Name:      "contains",
			Usage:     "范围包含判断，不在范围内时退出码为 1",
			ArgsUsage: "<枚举> <键> <值>",
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.NArg() != 3 {
					return usagef("contains 命令需要枚举名称、成员键和待判断的值")
				}
				args := cmd.Args()
				return a.cmdContains(args.Get(0), args.Get(1), args.Get(2))
			},
		},
		{
			Name:      "classify",
			Usage:     "列出 IPv4 地址命中的全部用途",
			ArgsUsage: "<IPv4 地址>",
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.NArg() != 1 {
					return usagef("classify 命令需要一个 IPv4 地址")
				}
				return a.cmdClassify(cmd.Args().Get(0))
			},
		},
		{
			Name:  "locales",
			Usage: "列出全部语言区域代码",
			Action: func(_ context.Context, _ *cli.Command) error {
				return a.cmdLocales()
			},
		},
		{
			Name:      "digest",
			Usage:     "用 Algorithm 成员计算文本摘要",
			ArgsUsage: "<算法> <文本>",
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.NArg() != 2 {
					return usagef("digest 命令需要算法成员键和文本")
				}
				return a.cmdDigest(cmd.Args().Get(0), cmd.Args().Get(1))
			},
		},
		{
			Name:  "fingerprint",
			Usage: "输出注册表内容摘要",
			Action: func(_ context.Context, _ *cli.Command) error {
				return a.cmdFingerprint()
			},
		},
	}
}

// =============================================================================
// 命令实现
// =============================================================================

type listRow struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Members     int    `json:"members" yaml:"members"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

func fingerprintHex(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

func (a *app) cmdList() error {
	items := xconstraint.Catalog().All()
	rows := make([]listRow, 0, len(items))
	for _, d := range items {
		rows = append(rows, listRow{
			Name:        d.Name(),
			Kind:        d.Kind().String(),
			Members:     d.Len(),
			Fingerprint: fingerprintHex(d.Fingerprint()),
		})
	}
	a.log.Debug("list enumerations", slog.Int("count", len(rows)))

	return a.render(rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "NAME\tKIND\tMEMBERS\tFINGERPRINT")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Name, r.Kind, r.Members, r.Fingerprint)
		}
	})
}

type showView struct {
	Name        string        `json:"name" yaml:"name"`
	Kind        string        `json:"kind" yaml:"kind"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Members     []xenum.Entry `json:"members" yaml:"members"`
}

func (a *app) cmdShow(name string) error {
	d, err := xconstraint.Enumeration(name)
	if err != nil {
		return err
	}
	view := showView{
		Name:        d.Name(),
		Kind:        d.Kind().String(),
		Fingerprint: fingerprintHex(d.Fingerprint()),
		Members:     d.Entries(),
	}
	a.log.Debug("show enumeration", slog.String("name", name), slog.Int("members", len(view.Members)))

	return a.render(view, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "KEY\tVALUE\tALIAS_OF")
		for _, e := range view.Members {
			fmt.Fprintf(tw, "%s\t%v\t%s\n", e.Key, e.Value, e.AliasOf)
		}
	})
}

func (a *app) cmdValue(name, key string) error {
	d, err := xconstraint.Enumeration(name)
	if err != nil {
		return err
	}
	// 未知键由 ValueAny 报告 ErrUnknownMember。
	if _, err := d.ValueAny(key); err != nil {
		return err
	}
	var entry xenum.Entry
	for _, e := range d.Entries() {
		if e.Key == key {
			entry = e
			break
		}
	}
	a.log.Debug("lookup member", slog.String("name", name), slog.String("key", key))

	return a.render(entry, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%v\n", entry.Value)
	})
}

type containsView struct {
	Enumeration string `json:"enumeration" yaml:"enumeration"`
	Key         string `json:"key" yaml:"key"`
	Value       string `json:"value" yaml:"value"`
	Contains    bool   `json:"contains" yaml:"contains"`
}

// cmdContains 判断 raw 是否落在成员 key 的范围内。
// IPv4Purpose 接受点分地址，其余范围枚举接受十进制整数。
func (a *app) cmdContains(name, key, raw string) error {
	d, err := xconstraint.Enumeration(name)
	if err != nil {
		return err
	}
	if d.Kind() != xenum.KindRange {
		return fmt.Errorf("%w: %s is %s", xenum.ErrNotRange, d.Name(), d.Kind())
	}

	var ok bool
	if addr, perr := netip.ParseAddr(raw); perr == nil && d.Name() == xconstraint.IPv4Purpose().Name() {
		if !addr.Is4() {
			return usagef("不是 IPv4 地址: %s", raw)
		}
		ok, err = xconstraint.IPv4Contains(key, addr)
	} else {
		x, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return usagef("无法解析的值: %q", raw)
		}
		ok, err = xenum.InRange(d, key, x)
	}
	if err != nil {
		return err
	}
	a.log.Debug("range check", slog.String("name", name), slog.String("key", key),
		slog.String("value", raw), slog.Bool("contains", ok))

	view := containsView{Enumeration: d.Name(), Key: key, Value: raw, Contains: ok}
	if err := a.render(view, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, strconv.FormatBool(ok))
	}); err != nil {
		return err
	}
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) cmdClassify(raw string) error {
	addr, err := netip.ParseAddr(raw)
	if err != nil || !addr.Is4() {
		return usagef("不是 IPv4 地址: %s", raw)
	}
	keys := xconstraint.IPv4Purposes(addr)
	a.log.Debug("classify address", slog.String("addr", addr.String()), slog.Int("matches", len(keys)))

	return a.render(keys, func(tw *tabwriter.Writer) {
		for _, k := range keys {
			fmt.Fprintln(tw, k)
		}
	})
}

func (a *app) cmdLocales() error {
	codes := xconstraint.LocaleCodes()
	return a.render(codes, func(tw *tabwriter.Writer) {
		for _, c := range codes {
			fmt.Fprintln(tw, c)
		}
	})
}

type digestView struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest" yaml:"digest"`
}

func (a *app) cmdDigest(key, text string) error {
	h, err := xconstraint.NewHash(key)
	if err != nil {
		if errors.Is(err, xenum.ErrUnknownMember) {
			return usagef("未知算法: %s", key)
		}
		return err
	}
	_, _ = h.Write([]byte(text))
	view := digestView{
		Algorithm: xconstraint.Algorithm().MustValueOf(key),
		Digest:    hex.EncodeToString(h.Sum(nil)),
	}
	return a.render(view, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, view.Digest)
	})
}

func (a *app) cmdFingerprint() error {
	fp := fingerprintHex(xconstraint.Fingerprint())
	return a.render(map[string]string{"fingerprint": fp}, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, fp)
	})
}
