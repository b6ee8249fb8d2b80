package config

import "strings"

// Slack workspace emoji conventions. Team emojis follow the ":_xxx:" custom
// emoji naming, broadcasters map to their workspace aliases, and section
// markers label the fixed footer lines.

var broadcasterEmojiNames = map[string]string{
	"NBA TV":      "NBATV",
	"ESPN":        "ESPN",
	"TNT":         "TNT",
	"ABC":         "ABC",
	"Prime Video": "PrimeVideo",
	"Peacock":     "peacock",
	"NBC":         "nbc_peacock",
}

var sectionEmojiNames = map[string]string{
	"top10":     "t10",
	"notable":   "notable",
	"milestone": "milestone",
	"gtd":       "gtd",
	"out":       "out",
	"streak":    "fire",
}

// TeamEmoji returns the Slack emoji string for a team tricode.
func TeamEmoji(tricode string) string {
	code := strings.ToLower(strings.TrimSpace(tricode))
	if code == "" {
		return ""
	}
	return ":_" + code + ":"
}

// BroadcasterEmoji returns the Slack emoji string for a broadcaster name.
func BroadcasterEmoji(name string) string {
	alias, ok := broadcasterEmojiNames[name]
	if !ok {
		alias = "_" + strings.ReplaceAll(name, " ", "")
	}
	return ":" + alias + ":"
}

// SectionEmoji returns the Slack emoji marking a footer or rankings section.
func SectionEmoji(section string) string {
	alias, ok := sectionEmojiNames[section]
	if !ok {
		alias = section
	}
	return ":" + alias + ":"
}
