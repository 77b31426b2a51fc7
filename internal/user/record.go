package user

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Account records are stored one per line as a flat mapping literal, the way
// existing users.txt files hold them:
//
//	{'type': 'Customer', 'user_id': 2, 'username': 'shopper01', 'password': 'Secret123', 'first_name': 'Ann', 'last_name': 'Lee', 'address': '1 Main St'}
//
// Decoding is a strict parse against a fixed schema; nothing in the line is
// evaluated.

const (
	fieldType      = "type"
	fieldUserID    = "user_id"
	fieldUsername  = "username"
	fieldPassword  = "password"
	fieldFirstName = "first_name"
	fieldLastName  = "last_name"
	fieldAddress   = "address"
)

var recordFields = []string{
	fieldType, fieldUserID, fieldUsername, fieldPassword,
	fieldFirstName, fieldLastName, fieldAddress,
}

// EncodeRecord renders u as one account line without the trailing newline.
func EncodeRecord(u *User) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(quote(fieldType) + ": " + quote(string(u.Role)))
	b.WriteString(", " + quote(fieldUserID) + ": " + strconv.Itoa(u.ID))
	b.WriteString(", " + quote(fieldUsername) + ": " + quote(u.Username))
	b.WriteString(", " + quote(fieldPassword) + ": " + quote(u.Password))
	b.WriteString(", " + quote(fieldFirstName) + ": " + quote(u.FirstName))
	b.WriteString(", " + quote(fieldLastName) + ": " + quote(u.LastName))
	b.WriteString(", " + quote(fieldAddress) + ": " + quote(u.Address))
	b.WriteString("}")
	return b.String()
}

// DecodeRecord parses one account line. Every schema key must appear exactly
// once; errors wrap ErrMalformedRecord.
func DecodeRecord(line string) (*User, error) {
	p := &recordParser{src: strings.TrimSpace(line)}
	fields, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	for _, key := range recordFields {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrMalformedRecord, key)
		}
	}

	str := func(key string) (string, error) {
		v := fields[key]
		if !v.isString {
			return "", fmt.Errorf("%w: %q must be a string", ErrMalformedRecord, key)
		}
		return v.str, nil
	}

	id := fields[fieldUserID]
	if id.isString {
		return nil, fmt.Errorf("%w: %q must be an integer", ErrMalformedRecord, fieldUserID)
	}

	var prof Profile
	prof.ID = id.num
	roleName, err := str(fieldType)
	if err != nil {
		return nil, err
	}
	if prof.Username, err = str(fieldUsername); err != nil {
		return nil, err
	}
	if prof.Password, err = str(fieldPassword); err != nil {
		return nil, err
	}
	if prof.FirstName, err = str(fieldFirstName); err != nil {
		return nil, err
	}
	if prof.LastName, err = str(fieldLastName); err != nil {
		return nil, err
	}
	if prof.Address, err = str(fieldAddress); err != nil {
		return nil, err
	}

	switch Role(roleName) {
	case RoleAdmin:
		return NewAdmin(prof), nil
	case RoleCustomer:
		return NewCustomer(prof), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedRecord, roleName)
	}
}

type recordValue struct {
	isString bool
	str      string
	num      int
}

type recordParser struct {
	src string
	pos int
}

func (p *recordParser) parse() (map[string]recordValue, error) {
	fields := make(map[string]recordValue, len(recordFields))

	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return fields, p.end()
	}

	for {
		p.skipSpace()
		key, err := p.parseString()
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		if !isRecordField(key) {
			return nil, fmt.Errorf("unknown key %q", key)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		fields[key] = val

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipSpace()
			// trailing comma is valid in the literal syntax
			if p.peek() == '}' {
				p.pos++
				return fields, p.end()
			}
		case '}':
			p.pos++
			return fields, p.end()
		default:
			return nil, p.errorf("expected ',' or '}'")
		}
	}
}

func (p *recordParser) parseValue() (recordValue, error) {
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		s, err := p.parseString()
		return recordValue{isString: true, str: s}, err
	case c == '-' || (c >= '0' && c <= '9'):
		n, err := p.parseInt()
		return recordValue{num: n}, err
	default:
		return recordValue{}, p.errorf("expected string or integer")
	}
}

func (p *recordParser) parseInt() (int, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad integer %q", p.src[start:p.pos])
	}
	return n, nil
}

func (p *recordParser) parseString() (string, error) {
	q := p.peek()
	if q != '\'' && q != '"' {
		return "", p.errorf("expected quoted string")
	}
	p.pos++

	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == q:
			p.pos++
			return b.String(), nil
		case c == '\n':
			return "", p.errorf("newline in string")
		case c == '\\':
			p.pos++
			r, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			if r == utf8.RuneError && size == 1 {
				return "", p.errorf("invalid utf-8")
			}
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *recordParser) parseEscape() (rune, error) {
	if p.pos >= len(p.src) {
		return 0, p.errorf("dangling escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		return p.parseHex(2)
	case 'u':
		return p.parseHex(4)
	case 'U':
		return p.parseHex(8)
	default:
		return 0, p.errorf("unsupported escape \\%c", c)
	}
}

func (p *recordParser) parseHex(n int) (rune, error) {
	if p.pos+n > len(p.src) {
		return 0, p.errorf("short hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, p.errorf("bad hex escape %q", p.src[p.pos:p.pos+n])
	}
	p.pos += n
	return rune(v), nil
}

func (p *recordParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *recordParser) end() error {
	p.skipSpace()
	if p.pos != len(p.src) {
		return p.errorf("trailing data")
	}
	return nil
}

func (p *recordParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *recordParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *recordParser) errorf(format string, args ...any) error {
	return fmt.Errorf("at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func isRecordField(key string) bool {
	for _, f := range recordFields {
		if f == key {
			return true
		}
	}
	return false
}

// quote renders s as a single-quoted literal, switching to double quotes when s
// holds a single quote and no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r >= 0x80 && !unicode.IsPrint(r):
			switch {
			case r < 0x100:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
