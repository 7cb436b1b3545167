// Package companion holds the behaviour modes shared by the chat and voice companions.
package companion

import "strings"

type BehaviorMode string

const (
	ModeDark  BehaviorMode = "DARK"
	ModeLight BehaviorMode = "LIGHT"
	ModeStudy BehaviorMode = "STUDY"
)

const DefaultMode = ModeLight

func (m BehaviorMode) IsValid() bool {
	switch m {
	case ModeDark, ModeLight, ModeStudy:
		return true
	}
	return false
}

// switchPhrases is scanned in order; the first phrase found wins.
var switchPhrases = []struct {
	phrase string
	mode   BehaviorMode
}{
	{"dark mode on", ModeDark},
	{"light mode on", ModeLight},
	{"study mode on", ModeStudy},
}

// DetectModeSwitch reports the mode requested by a spoken or typed command, if any.
func DetectModeSwitch(text string) (BehaviorMode, bool) {
	clean := strings.ToLower(strings.TrimSpace(text))
	for _, p := range switchPhrases {
		if strings.Contains(clean, p.phrase) {
			return p.mode, true
		}
	}
	return "", false
}
