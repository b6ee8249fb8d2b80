package slackchat

import "strings"

// Slack rejects section text over 3000 characters, so long messages are
// split into multiple sections on paragraph boundaries.
const sectionTextLimit = 3000

type Block struct {
	Type string     `json:"type"`
	Text *BlockText `json:"text,omitempty"`
}

type BlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// BlocksFromText converts an mrkdwn message into Block Kit section
// blocks, splitting at blank lines whenever a section would exceed the
// Slack size limit. An empty message yields no blocks.
func BlocksFromText(text string) []Block {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var blocks []Block
	for _, chunk := range splitSections(text) {
		blocks = append(blocks, Block{
			Type: "section",
			Text: &BlockText{Type: "mrkdwn", Text: chunk},
		})
	}
	return blocks
}

func splitSections(text string) []string {
	if len(text) <= sectionTextLimit {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")
	var (
		sections []string
		current  strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
	}
	for _, p := range paragraphs {
		if current.Len() > 0 && current.Len()+2+len(p) > sectionTextLimit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		// A single paragraph over the limit is cut hard; Slack
		// truncates mid-word anyway so this is no worse.
		for len(p) > sectionTextLimit {
			flush()
			sections = append(sections, p[:sectionTextLimit])
			p = p[sectionTextLimit:]
		}
		current.WriteString(p)
	}
	flush()
	return sections
}
