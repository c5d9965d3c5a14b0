package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"schoolnote/internal/domain/entity"
	"schoolnote/internal/util"

	"github.com/pkg/errors"
)

const previewRunes = 160

// print writes v as indented JSON with --json, otherwise runs the human-readable renderer.
func (c *cli) print(w io.Writer, v any, render func(p *printer)) error {
	if c.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.WithStack(enc.Encode(v))
	}

	p := &printer{w: w, t: c.controller.Translate}
	render(p)

	return errors.WithStack(p.err)
}

// printer keeps the first write error so renderers can stay linear.
type printer struct {
	w   io.Writer
	t   func(key string) string
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) keyVal(key, value string) {
	p.printf("  %-14s %s\n", key+":", value)
}

func (p *printer) section(title string) {
	p.printf("\n%s\n%s\n", title, strings.Repeat("─", len([]rune(title))))
}

func (p *printer) translation(r *entity.TranslationResult) {
	p.keyVal("file", r.OriginalFileName)
	if r.FileMeta.SizeBytes > 0 {
		meta := util.FormatBytes(r.FileMeta.SizeBytes)
		if r.FileMeta.PageCount > 0 {
			meta += fmt.Sprintf(", %d pages", r.FileMeta.PageCount)
		}
		p.keyVal("size", meta)
	}
	if r.Timings.TotalMs > 0 {
		p.keyVal("took", util.FormatMillis(r.Timings.TotalMs))
	}

	p.section(p.t("translation.tabs.summary"))
	p.line(r.Summary)

	if len(r.Events) > 0 {
		p.section(p.t("translation.tabs.events"))
		for _, ev := range r.Events {
			when := strings.TrimSpace(ev.Date + " " + ev.Time)
			if when == "" {
				p.printf("  • %s\n", ev.Title)
			} else {
				p.printf("  • %s  %s\n", when, ev.Title)
			}
			if ev.Location != "" {
				p.printf("    @ %s\n", ev.Location)
			}
		}
	}

	if len(r.Vocabulary) > 0 {
		p.section(p.t("translation.tabs.vocabulary"))
		for _, v := range r.Vocabulary {
			p.printf("  %s: %s\n", v.Term, v.Meaning)
		}
	}

	p.section(p.t("translation.tabs.translation"))
	p.line(r.TranslatedText)
	p.printf("\n%s\n", p.t("translation.warning"))
}

func (p *printer) user(u *entity.User) {
	if u == nil {
		return
	}
	p.keyVal("id", u.ID)
	p.keyVal("name", u.Name)
	if u.Email != "" {
		p.keyVal("email", u.Email)
	}
	p.keyVal("provider", string(u.Provider))

	if len(u.Children) == 0 {
		return
	}
	p.section(p.t("profile.children"))
	for _, child := range u.Children {
		p.printf("  %s  %s, %s", child.ID, child.Name, child.School)
		if child.Grade > 0 {
			p.printf(" (%d)", child.Grade)
		}
		if child.ClassName != "" {
			p.printf(" %s", child.ClassName)
		}
		p.printf("\n")
	}
}

func (p *printer) history(results []entity.TranslationResult) {
	if len(results) == 0 {
		p.line(p.t("history.empty"))

		return
	}
	for _, r := range results {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		p.printf("%s  %-8s %s\n", date, r.TargetLanguage, r.OriginalFileName)
		if r.Summary != "" {
			p.printf("    %s\n", util.Truncate(r.Summary, previewRunes))
		}
	}
}

func (p *printer) languages(languages []entity.Language, current string) {
	for _, l := range languages {
		marker := " "
		if l.Code == current {
			marker = "*"
		}
		p.printf("%s %-4s %-12s %s\n", marker, l.Code, l.BackendName, l.NativeName)
	}
}

func (p *printer) session(s entity.Session) {
	p.keyVal("kind", s.Kind.String())
	if s.UserID != "" {
		p.keyVal("user", s.UserID)
	}
	if !s.ExpiresAt.IsZero() {
		p.keyVal("expires", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
}
