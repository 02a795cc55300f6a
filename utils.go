package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText normalizes pasted array text. Hex arrays copied out of
// IDEs or web pages can arrive as RTF on macOS; the parser only wants the
// plain characters.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' || r == '}' {
			continue
		}
		if r == '\\' {
			if i+1 < len(runes) {
				next := runes[i+1]
				if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
					i++
					for i < len(runes) {
						if runes[i] == ' ' || runes[i] == '\\' || runes[i] == '{' || runes[i] == '}' {
							if runes[i] == ' ' {
								i++
							}
							break
						}
						i++
					}
					i--
					continue
				} else if next == '\\' || next == '{' || next == '}' {
					result.WriteRune(next)
					i++
					continue
				} else if next == '\n' || next == '\r' || next == '\t' {
					result.WriteRune(next)
					i++
					continue
				}
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
