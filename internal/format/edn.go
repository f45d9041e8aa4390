package format

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// WriteEDN writes doc as an EDN map with keyword keys:
//
//	{:count 2 :tasks [{:id "1" :text "a"} {:id "2" :text "b"}]}
//
// With pretty set, each task goes on its own line.
func WriteEDN(w io.Writer, doc TaskList, pretty bool) error {
	var buf bytes.Buffer
	buf.WriteString("{:count ")
	buf.WriteString(strconv.Itoa(doc.Count))
	buf.WriteString(" :tasks [")
	for i, t := range doc.Tasks {
		if pretty {
			buf.WriteString("\n  ")
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString("{:id ")
		buf.WriteString(ednString(t.ID))
		buf.WriteString(" :text ")
		buf.WriteString(ednString(t.Text))
		buf.WriteByte('}')
	}
	if pretty && len(doc.Tasks) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("]}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// ednString quotes s using the escapes EDN shares with Go (\" \\ \n \t \r).
// Other control characters are written as \uXXXX.
func ednString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				b.WriteString(strings.Repeat("0", 4-len(hex)))
				b.WriteString(hex)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
