package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一段文字的像素宽度
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return WrapWords(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// WrapWords 按单词换行，测量函数可注入（测试时使用等宽测量）
//
// 换行规则:
//   - 在空格处断行，原文中的换行符保留
//   - 单个单词超过最大宽度时按字符强制断行
func WrapWords(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		currentLine := ""
		for _, word := range words {
			testLine := word
			if currentLine != "" {
				testLine = currentLine + " " + word
			}
			if measure(testLine) <= maxWidth {
				currentLine = testLine
				continue
			}
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			if measure(word) <= maxWidth {
				currentLine = word
				continue
			}
			// 单词本身超宽，按字符拆开
			pieces := breakWord(word, maxWidth, measure)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
		}
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 把超宽的单词按字符拆成多段，每段至少一个字符
func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = ""
		}
		current += char
		word = word[size:]
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
