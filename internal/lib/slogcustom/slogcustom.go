package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

type CustomHandler struct {
	l      *log.Logger
	level  slog.Leveler
	colors bool
	attrs  []slog.Attr
	group  string
}

// NewCustomHandler writes one line per record. Colors are off when out is a
// file that is read later with a plain pager.
func NewCustomHandler(out io.Writer, level slog.Leveler, colors bool) *CustomHandler {
	return &CustomHandler{
		l:      log.New(out, "", 0),
		level:  level,
		colors: colors,
	}
}

func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level >= slog.LevelError:
		level = c.paint(color.FgRed, level)
	case r.Level >= slog.LevelWarn:
		level = c.paint(color.FgYellow, level)
	case r.Level >= slog.LevelInfo:
		level = c.paint(color.FgHiBlue, level)
	default:
		level = c.paint(color.FgMagenta, level)
	}

	var attrs strings.Builder
	for _, a := range c.attrs {
		c.writeAttr(&attrs, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		c.writeAttr(&attrs, a, c.group)
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSpace(attrs.String()),
	)
	return nil
}

func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *c
	next.attrs = append([]slog.Attr(nil), c.attrs...)
	for _, a := range attrs {
		// Attrs bound here belong to the group open at this point.
		if c.group != "" {
			a.Key = c.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (c *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}
	next := *c
	if next.group != "" {
		next.group += "."
	}
	next.group += name
	return &next
}

func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

func (c *CustomHandler) writeAttr(b *strings.Builder, a slog.Attr, group string) {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	b.WriteString(c.paint(color.FgGreen, key))
	b.WriteString("=")
	b.WriteString(fmt.Sprint(a.Value.Any()))
	b.WriteString(" ")
}

func (c *CustomHandler) paint(attr color.Attribute, s string) string {
	if !c.colors {
		return s
	}
	p := color.New(attr)
	p.EnableColor()
	return p.Sprint(s)
}
