package cli

import "strings"

// FlagType selects the parser used for a flag's raw value when no custom
// [ParseFunc] is set. The zero value is [FlagString].
type FlagType int

const (
	FlagString FlagType = iota
	FlagBool
	FlagInt
	FlagFloat
	FlagList
	FlagDuration
	FlagEnum
	FlagFile
)

func (t FlagType) String() string {
	switch t {
	case FlagString:
		return "string"
	case FlagBool:
		return "bool"
	case FlagInt:
		return "int"
	case FlagFloat:
		return "float"
	case FlagList:
		return "list"
	case FlagDuration:
		return "duration"
	case FlagEnum:
		return "enum"
	case FlagFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseFunc converts a flag's raw command-line value into its final typed
// value. Returning an error fails the run with a usage error that carries
// the raw string.
type ParseFunc func(raw string) (any, error)

// Flag describes a single named option attached to a command.
//
// Name holds the primary name first, followed by any aliases, separated by
// commas: "user, u". Matching tokens may use any number of leading dashes,
// so both -u and --user select the flag above. Values always arrive as the
// following token; boolean flags take no value and resolve to true when
// present.
//
// Flags resolve into the [Context] under their primary name. A nil Default
// on a non-required flag means the flag is simply absent when not passed.
type Flag struct {
	// Name is a comma-separated list of names, primary name first.
	Name string

	// Type selects the default value parser. Ignored when Parse is set.
	Type FlagType

	// Usage is the one-line description shown on help pages.
	Usage string

	// Default is stored in the context when the flag is not passed. A nil
	// Default combined with Required makes the flag mandatory.
	Default any

	// Required fails the run with a usage error when the flag is missing
	// and no Default is set.
	Required bool

	// Hidden removes the flag from help pages without disabling it.
	Hidden bool

	// Parse overrides the Type-derived parser for this flag.
	Parse ParseFunc
}

// BoolFlag declares a switch that takes no value. It defaults to false, so
// the flag is always present in the context once resolved.
func BoolFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagBool, Usage: usage, Default: false}
}

// StringFlag declares a flag whose value is kept as the raw string.
func StringFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagString, Usage: usage}
}

// IntFlag declares a flag parsed with strconv.Atoi.
func IntFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagInt, Usage: usage}
}

// FloatFlag declares a flag parsed as a float64.
func FloatFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagFloat, Usage: usage}
}

// DecimalFlag declares a float64 flag rounded to the given number of decimal
// places.
func DecimalFlag(name, usage string, places int) *Flag {
	return &Flag{Name: name, Type: FlagFloat, Usage: usage, Parse: decimalParser(places)}
}

// ListFlag declares a flag whose value is split on commas into a []string,
// with surrounding whitespace trimmed from each element.
func ListFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagList, Usage: usage}
}

// DurationFlag declares a flag parsed by [ParseDuration], accepting compound
// values such as "1w2d3h4m5s".
func DurationFlag(name, usage string) *Flag {
	return &Flag{Name: name, Type: FlagDuration, Usage: usage}
}

// EnumFlag declares a string flag restricted to the given choices. Any other
// value fails to decode.
func EnumFlag(name, usage string, choices ...string) *Flag {
	return &Flag{Name: name, Type: FlagEnum, Usage: usage, Parse: enumParser(choices)}
}

// FilePathFlag declares a flag whose value is resolved to an absolute path.
// When mustExist is true the path has to name an existing file; otherwise it
// has to name a new one.
func FilePathFlag(name, usage string, mustExist bool) *Flag {
	return &Flag{Name: name, Type: FlagFile, Usage: usage, Parse: filePathParser(mustExist)}
}

// Names returns the flag's names in declaration order, primary name first.
func (f *Flag) Names() []string {
	names := strings.Split(f.Name, ",")
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// PrimaryName returns the first declared name, the key under which the
// resolved value is stored.
func (f *Flag) PrimaryName() string {
	names := f.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// HasName reports whether name matches the flag's primary name or any alias.
func (f *Flag) HasName(name string) bool {
	return contains(f.Names(), name)
}

// HasValue reports whether the flag consumes the token that follows it.
// Only boolean switches do not.
func (f *Flag) HasValue() bool {
	return f.Type != FlagBool
}

// String renders the display form used in help pages and error messages,
// e.g. "user, u".
func (f *Flag) String() string {
	return strings.Join(f.Names(), ", ")
}

// index returns the position of the first token matching the flag, or -1.
// A token matches when it starts with a dash and, with leading dashes
// stripped, equals one of the flag's names.
func (f *Flag) index(tokens []string) int {
	for i, tok := range tokens {
		if !strings.HasPrefix(tok, "-") {
			continue
		}
		if f.HasName(strings.TrimLeft(tok, "-")) {
			return i
		}
	}
	return -1
}

// decode runs the flag's parser over a raw value.
func (f *Flag) decode(raw string) (any, error) {
	if f.Parse != nil {
		return f.Parse(raw)
	}
	return parserFor(f.Type)(raw)
}

// parserFor maps a [FlagType] to its built-in parser. Enum flags have no
// usable zero configuration and fall back to string until a Parse func is
// attached by [EnumFlag].
func parserFor(t FlagType) ParseFunc {
	switch t {
	case FlagBool:
		return func(raw string) (any, error) { return ParseBool(raw) }
	case FlagInt:
		return intParser
	case FlagFloat:
		return floatParser
	case FlagList:
		return listParser
	case FlagDuration:
		return func(raw string) (any, error) { return ParseDuration(raw) }
	case FlagFile:
		return filePathParser(true)
	default:
		return func(raw string) (any, error) { return raw, nil }
	}
}
