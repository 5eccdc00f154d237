package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationRe accepts compound durations built from weeks, days, hours,
// minutes and seconds, each component optional but ordered: "1w2d3h4m5s".
var durationRe = regexp.MustCompile(`^(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

// ParseBool converts common truthy and falsy spellings into a bool. It
// accepts "true", "false", "1" and "0" in any case and rejects everything
// else.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool: %q", raw)
}

// ParseDuration converts a compound duration string such as "1w2d3h4m5s"
// into a [time.Duration]. Each unit is optional but at least one must be
// present, and units must appear in descending order.
func ParseDuration(raw string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(raw)
	if m == nil || raw == "" {
		return 0, fmt.Errorf("invalid duration: %q", raw)
	}
	units := []time.Duration{
		7 * 24 * time.Hour,
		24 * time.Hour,
		time.Hour,
		time.Minute,
		time.Second,
	}
	var total time.Duration
	var seen bool
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %q", raw)
		}
		total += time.Duration(n) * unit
		seen = true
	}
	if !seen {
		return 0, fmt.Errorf("invalid duration: %q", raw)
	}
	return total, nil
}

func intParser(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid int: %q", raw)
	}
	return n, nil
}

func floatParser(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float: %q", raw)
	}
	return f, nil
}

// decimalParser rounds parsed floats to a fixed number of decimal places.
func decimalParser(places int) ParseFunc {
	shift := math.Pow(10, float64(places))
	return func(raw string) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal: %q", raw)
		}
		return math.Round(f*shift) / shift, nil
	}
}

func listParser(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, nil
}

// enumParser restricts values to a fixed set of choices.
func enumParser(choices []string) ParseFunc {
	return func(raw string) (any, error) {
		if contains(choices, raw) {
			return raw, nil
		}
		return nil, fmt.Errorf("invalid choice: %q (choose from %s)", raw, strings.Join(choices, ", "))
	}
}

// filePathParser resolves values to absolute paths. With mustExist the path
// has to name an existing file; without it the path has to be free, so the
// flag can only ever point at a file the command creates itself.
func filePathParser(mustExist bool) ParseFunc {
	return func(raw string) (any, error) {
		abs, err := filepath.Abs(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %q", raw)
		}
		_, err = os.Stat(abs)
		if mustExist && err != nil {
			return nil, fmt.Errorf("no such file: %q", raw)
		}
		if !mustExist && err == nil {
			return nil, fmt.Errorf("file already exists: %q", raw)
		}
		return abs, nil
	}
}
