package trap

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Property names accepted by ApplyCommand
const (
	PropertyAttack   = "attack"
	PropertyDamage   = "damage"
	PropertyMissHalf = "missHalf"
	PropertySpotDC   = "spotDC"
)

// EditableProperties lists the property names ApplyCommand understands
var EditableProperties = []string{PropertyAttack, PropertyDamage, PropertyMissHalf, PropertySpotDC}

// IsEditableProperty reports whether ApplyCommand acts on name
func IsEditableProperty(name string) bool {
	for _, p := range EditableProperties {
		if p == name {
			return true
		}
	}
	return false
}

// ApplyCommand edits one property in place. Unknown property names and
// malformed arguments are not errors:
//
//	attack <bonus> <defense>  unparseable bonus clears attack and defense;
//	                          a missing defense is stored empty, which
//	                          leaves automation off
//	damage <expression>       stored verbatim, empty clears it
//	missHalf <yes|...>        true only for the literal "yes"
//	spotDC <number>           unparseable input is stored as NaN
func (c *Configuration) ApplyCommand(property string, args []string) {
	switch property {
	case PropertyAttack:
		bonus, ok := ParseLeadingInt(arg(args, 0))
		if !ok {
			c.Attack = nil
			c.Defense = ""
			return
		}
		c.Attack = &bonus
		c.Defense = Defense(arg(args, 1))
	case PropertyDamage:
		c.Damage = arg(args, 0)
	case PropertyMissHalf:
		c.MissHalf = arg(args, 0) == "yes"
	case PropertySpotDC:
		if dc, ok := ParseLeadingInt(arg(args, 0)); ok {
			c.SpotDC = NewDC(dc)
		} else {
			c.SpotDC = NaNDC()
		}
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// ParseLeadingInt reads an integer from the start of s the way a lenient
// command parser does: leading whitespace and a sign are allowed, a 0x
// prefix switches to hex, and anything after the digits is ignored
// ("12 feet" is 12). It reports false when no digits are found, including a
// bare "0x". Values outside the 32-bit range saturate at its bounds.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseInt(sign+s[:end], base, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return int(value), true
}

func isDigit(b byte, base int) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case base == 16:
		return (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return false
	}
}
