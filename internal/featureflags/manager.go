// Package featureflags provides runtime kill switches and gradual rollouts
// configured through the FEATURE_FLAGS setting.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Flag is a feature flag name known to the application.
type Flag string

// Flags consumed by the server. Unknown names may appear in config but
// evaluate to off.
const (
	// DisableChat turns away chat history reads and websocket sessions.
	DisableChat Flag = "disable_chat"
)

type mode int

const (
	modeOff mode = iota
	modeOn
	modePercent
)

type setting struct {
	mode    mode
	percent int
}

// Manager evaluates flags parsed from a comma-separated key=value list,
// e.g. "disable_chat=on,new_feed=25%". Values are on/off/true/false/1/0, or
// N% for a deterministic per-user rollout.
type Manager struct {
	settings map[Flag]setting
	raw      map[string]string
}

// NewManager parses a flag list. Malformed pairs are skipped.
func NewManager(list string) *Manager {
	m := &Manager{
		settings: make(map[Flag]setting),
		raw:      make(map[string]string),
	}

	for _, pair := range strings.Split(list, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = normalize(key)
		value = normalize(value)
		if key == "" || value == "" {
			continue
		}
		m.raw[key] = value
		m.settings[Flag(key)] = parseSetting(value)
	}

	return m
}

func parseSetting(value string) setting {
	switch value {
	case "on", "true", "1":
		return setting{mode: modeOn}
	case "off", "false", "0":
		return setting{mode: modeOff}
	}

	if pct, ok := strings.CutSuffix(value, "%"); ok {
		n, err := strconv.Atoi(pct)
		if err != nil || n <= 0 {
			return setting{mode: modeOff}
		}
		if n >= 100 {
			return setting{mode: modeOn}
		}
		return setting{mode: modePercent, percent: n}
	}

	return setting{mode: modeOff}
}

// Enabled reports whether the flag applies to the given user. Percentage
// rollouts bucket users deterministically; anonymous requests (userID 0)
// never fall inside a partial rollout.
func (m *Manager) Enabled(flag Flag, userID uint) bool {
	if m == nil {
		return false
	}

	s, ok := m.settings[flag]
	if !ok {
		return false
	}

	switch s.mode {
	case modeOn:
		return true
	case modePercent:
		if userID == 0 {
			return false
		}
		return rolloutBucket(flag, userID) < s.percent
	default:
		return false
	}
}

// Raw returns a copy of the configured flag values.
func (m *Manager) Raw() map[string]string {
	out := make(map[string]string, len(m.raw))
	for k, v := range m.raw {
		out[k] = v
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rolloutBucket(flag Flag, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%s:%d", flag, userID)))
	return int(h.Sum32() % 100)
}
