// Package mcformat renders Minecraft text formatting codes as HTML.
// NBT string payloads (level names, item display names, book pages) carry
// the legacy section-sign codes; this converts them to spans with CSS
// classes so the viewer can show them styled.
package mcformat

import (
	"html/template"
	"strings"
)

type state struct {
	color                                string
	bold, italic, underline, strike, obf bool
}

func (st state) classes() string {
	cls := []string{"mc-text"}
	if st.color != "" {
		cls = append(cls, "mc-"+st.color)
	}
	if st.bold {
		cls = append(cls, "mc-bold")
	}
	if st.italic {
		cls = append(cls, "mc-italic")
	}
	if st.underline {
		cls = append(cls, "mc-underline")
	}
	if st.strike {
		cls = append(cls, "mc-strike")
	}
	if st.obf {
		cls = append(cls, "mc-obf")
	}
	return strings.Join(cls, " ")
}

func isCodePrefix(r rune) bool { return r == '§' || r == '&' }

// Format converts color and format codes to HTML spans. Color codes are
// 0-9 and a-f; formats are k (obfuscated), l (bold), m (strikethrough),
// n (underline), o (italic), and r (reset). Both '§' and '&' prefixes are
// recognized.
func Format(s string) template.HTML {
	var (
		b    strings.Builder
		st   state
		open bool
	)
	closeSpan := func() {
		if open {
			b.WriteString("</span>")
			open = false
		}
	}
	openSpan := func() {
		b.WriteString(`<span class="` + st.classes() + `">`)
		open = true
	}
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if isCodePrefix(r) && i+1 < len(rs) {
			code := rs[i+1]
			i++
			closeSpan()
			switch code {
			case 'k', 'K':
				st.obf = true
			case 'l', 'L':
				st.bold = true
			case 'm', 'M':
				st.strike = true
			case 'n', 'N':
				st.underline = true
			case 'o', 'O':
				st.italic = true
			case 'r', 'R':
				st = state{}
				continue
			default:
				if c := colorClass(code); c != "" {
					st.color = c
				}
			}
			openSpan()
			continue
		}
		if !open {
			openSpan()
		}
		escape(&b, r)
	}
	closeSpan()
	return template.HTML(b.String())
}

// Strip removes all formatting codes, leaving the plain text.
func Strip(s string) string {
	if !strings.ContainsAny(s, "&§") {
		return s
	}
	out := make([]rune, 0, len(s))
	skip := false
	for _, r := range s {
		if skip {
			skip = false
			continue
		}
		if isCodePrefix(r) {
			skip = true
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func colorClass(code rune) string {
	switch code {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return "c" + string(code)
	case 'a', 'A':
		return "ca"
	case 'b', 'B':
		return "cb"
	case 'c', 'C':
		return "cc"
	case 'd', 'D':
		return "cd"
	case 'e', 'E':
		return "ce"
	case 'f', 'F':
		return "cf"
	}
	return ""
}

func escape(b *strings.Builder, r rune) {
	switch r {
	case '&':
		b.WriteString("&amp;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	case '"':
		b.WriteString("&quot;")
	case '\'':
		b.WriteString("&#39;")
	default:
		b.WriteRune(r)
	}
}
