package twitch

import "strings"

// message is one parsed IRC line from the chat gateway
type message struct {
	tags    map[string]string
	nick    string
	command string
	params  []string
	text    string
}

// parseLine splits a raw IRC line into tags, prefix, command and params.
// The grammar is the small subset the chat gateway actually emits:
//
//	['@'tags SP] [':'prefix SP] command [SP params] [SP ':'trailing]
func parseLine(line string) message {
	m := message{tags: map[string]string{}}
	line = strings.TrimRight(line, "\r\n")

	if strings.HasPrefix(line, "@") {
		raw, rest, _ := strings.Cut(line[1:], " ")
		line = rest
		for _, kv := range strings.Split(raw, ";") {
			k, v, _ := strings.Cut(kv, "=")
			m.tags[k] = unescapeTag(v)
		}
	}

	if strings.HasPrefix(line, ":") {
		prefix, rest, _ := strings.Cut(line[1:], " ")
		line = rest
		if i := strings.IndexByte(prefix, '!'); i >= 0 {
			m.nick = prefix[:i]
		} else {
			m.nick = prefix
		}
	}

	if head, trailing, ok := strings.Cut(line, " :"); ok {
		line, m.text = head, trailing
	}
	fields := strings.Fields(line)
	if len(fields) > 0 {
		m.command = fields[0]
		m.params = fields[1:]
	}
	return m
}

// unescapeTag reverses the IRCv3 tag value escaping
func unescapeTag(v string) string {
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+1 == len(v) {
			b.WriteByte(v[i])
			continue
		}
		i++
		switch v[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// escapeTag applies the IRCv3 tag value escaping
func escapeTag(v string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\:", " ", "\\s", "\r", "\\r", "\n", "\\n")
	return r.Replace(v)
}
