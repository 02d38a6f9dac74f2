package encode

import (
	"strconv"

	"github.com/conformat/conform/header"
)

// buildHeaderText renders an array header: [key]«[[#]N[delim-hint]]»[{f1«delim»f2…}]:
// key is empty for a headless (list-item or root) array.
func buildHeaderText(key string, count int, tabular bool, cols []string, st *state) string {
	var b []byte
	if key != "" {
		b = append(b, encodeKeyToken(key)...)
	}
	b = append(b, '[')
	if st.countMarker {
		b = append(b, '#')
	}
	b = strconv.AppendInt(b, int64(count), 10)
	if st.delim != header.DefaultDelimiter {
		b = append(b, st.delim)
	}
	b = append(b, ']')
	if tabular {
		b = append(b, '{')
		for i, c := range cols {
			if i > 0 {
				b = append(b, st.delim)
			}
			b = append(b, encodeKeyToken(c)...)
		}
		b = append(b, '}')
	}
	b = append(b, ':')
	return string(b)
}
