package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap 按字符预算对文本做贪心折行。
//
// 行由完整单词以单个空格连接而成；单词永远不会被拆开，因此超长单词会独占一行并超出预算。
// 空文本或纯空白文本返回一个空行，保证纵向节奏不变。
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = word
		currentLen = wordLen
	}
	return append(lines, current)
}
