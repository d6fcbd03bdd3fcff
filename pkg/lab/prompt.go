package lab

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// BuildPrompt 生成发送给图片模型的完整提示词
//
// 提示词由画风说明、孩子的指令和指令中提到的角色外观描述组成。
// 角色名匹配不区分大小写（"jão" 和 "JÃO" 都能匹配 Jão）。
//
// 参数：
//   - instruction: 孩子选择或输入的创意
//
// 返回：
//   - string: 完整提示词
func BuildPrompt(instruction string) string {
	var b strings.Builder
	b.WriteString(config.VisualStyleGuide)
	fmt.Fprintf(&b, "\n\nINSTRUÇÃO: %s", instruction)

	mentioned := MentionedCharacters(instruction)
	if len(mentioned) == 0 {
		return b.String()
	}

	upper := cases.Upper(language.BrazilianPortuguese)
	b.WriteString("\n\nPERSONAGENS IDENTIFICADOS (MANTENHA ESTILO): \n")
	for i, p := range mentioned {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", upper.String(p.Name), p.VisualDescription)
	}
	return b.String()
}

// MentionedCharacters 按相册顺序返回指令中提到的角色
func MentionedCharacters(instruction string) []config.CharacterProfile {
	// Caser 有内部状态，不能跨 goroutine 共享
	lower := cases.Lower(language.BrazilianPortuguese)
	folded := lower.String(instruction)
	var out []config.CharacterProfile
	for _, p := range config.CharacterProfiles() {
		if strings.Contains(folded, lower.String(p.Name)) {
			out = append(out, p)
		}
	}
	return out
}
