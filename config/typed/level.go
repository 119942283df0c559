package typed

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/0xalexb/mirrorconf/config/value"
	"github.com/0xalexb/mirrorconf/logging"
)

// Level is a log severity. The zero Level is LevelInfo.
type Level int

// Levels, from most to least verbose.
const (
	LevelTrace Level = iota - 2
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = []string{"Trace", "Debug", "Info", "Warn", "Error"}

var levelList = strings.Join(levelNames, ", ")

// ParseLevel returns the Level with the given name. Names are case sensitive.
func ParseLevel(name string) (Level, error) {
	for i, candidate := range levelNames {
		if candidate == name {
			return LevelTrace + Level(i), nil
		}
	}

	return LevelInfo, fmt.Errorf("%w: level must be one of %s, got %q", ErrValueRange, levelList, name)
}

// Load implements Value.
func (l *Level) Load(node *value.Node, typeName, key string) error {
	name, ok := node.Str()
	if !ok {
		return mismatch(typeName, key, "not a level name")
	}

	parsed, err := ParseLevel(name)
	if err != nil {
		return outOfRange(typeName, key, "must be one of "+levelList+", got "+strconv.Quote(name))
	}

	*l = parsed

	return nil
}

// Describe implements Value.
func (l *Level) Describe() (string, bool) {
	return l.String(), true
}

func (l Level) String() string {
	i := int(l - LevelTrace)
	if i < 0 || i >= len(levelNames) {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}

	return levelNames[i]
}

// SlogLevel maps l onto log/slog. Trace maps to logging.LevelTrace.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= LevelTrace:
		return logging.LevelTrace
	case l == LevelDebug:
		return slog.LevelDebug
	case l == LevelInfo:
		return slog.LevelInfo
	case l == LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
