package config

import (
	"image/color"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// CharacterProfile 角色档案
// 首页卡片、相册、旁白和创意实验室的提示词都从这里读取
type CharacterProfile struct {
	ID                types.Character
	Name              string       // 显示名称
	Trait             string       // 性格特点（首页自我介绍使用）
	Description       string       // 一句话简介
	VisualDescription string       // 外观描述（实验室提示词使用）
	Gender            types.Gender // 旁白语音性别
	Color             color.RGBA   // 卡片主题色
}

// characterProfiles 角色档案表
var characterProfiles = map[types.Character]CharacterProfile{
	types.CharacterJuninho: {
		ID:                types.CharacterJuninho,
		Name:              "Juninho",
		Trait:             "Coragem",
		Description:       "Líder corajoso!",
		VisualDescription: "Menino de pele clara, cabelos castanhos curtos e arrepiados. Veste camiseta verde-azulado (teal), calça bege. Usa muleta canadense cinza no braço direito.",
		Gender:            types.GenderMale,
		Color:             color.RGBA{R: 96, G: 165, B: 250, A: 255},
	},
	types.CharacterMaria: {
		ID:                types.CharacterMaria,
		Name:              "Maria",
		Trait:             "Empatia",
		Description:       "Acolhedora e amiga.",
		VisualDescription: "Menina de pele negra, cabelos pretos crespos e volumosos presos em dois grandes coques laterais (afro puffs) com prendedores amarelos. Vestido arco-íris.",
		Gender:            types.GenderFemale,
		Color:             color.RGBA{R: 244, G: 114, B: 182, A: 255},
	},
	types.CharacterTony: {
		ID:                types.CharacterTony,
		Name:              "Tony",
		Trait:             "Criatividade",
		Description:       "Inventor genial!",
		VisualDescription: "Menino de pele clara, cabelos loiros lisos e curtos com franja lateral. Usa óculos redondos grandes de aros azuis escuros.",
		Gender:            types.GenderMale,
		Color:             color.RGBA{R: 251, G: 146, B: 60, A: 255},
	},
	types.CharacterJao: {
		ID:                types.CharacterJao,
		Name:              "Jão",
		Trait:             "Alegria",
		Description:       "Sempre motivado!",
		VisualDescription: "Menino de pele negra, sorriso radiante. Usa um boné laranja virado para trás. Veste camiseta amarelo-gema.",
		Gender:            types.GenderMale,
		Color:             color.RGBA{R: 250, G: 204, B: 21, A: 255},
	},
	types.CharacterVerinha: {
		ID:                types.CharacterVerinha,
		Name:              "Verinha",
		Trait:             "Natureza",
		Description:       "Guardiã do planeta.",
		VisualDescription: "Menina de pele morena, cabelos pretos longos presos em duas tranças laterais. Veste bata laranja.",
		Gender:            types.GenderFemale,
		Color:             color.RGBA{R: 74, G: 222, B: 128, A: 255},
	},
}

// GetCharacterProfile 获取角色档案
//
// 参数：
//   - c: 角色标识
//
// 返回：
//   - CharacterProfile: 角色档案
//   - bool: 角色是否存在
func GetCharacterProfile(c types.Character) (CharacterProfile, bool) {
	p, ok := characterProfiles[c]
	return p, ok
}

// CharacterProfiles 按相册顺序返回全部角色档案
func CharacterProfiles() []CharacterProfile {
	all := types.AllCharacters()
	profiles := make([]CharacterProfile, 0, len(all))
	for _, c := range all {
		profiles = append(profiles, characterProfiles[c])
	}
	return profiles
}

// CharacterName 返回角色显示名称，未知角色返回空字符串
func CharacterName(c types.Character) string {
	return characterProfiles[c].Name
}

// VisualStyleGuide 创意实验室生成图片时附带的画风说明
const VisualStyleGuide = `
DIRETRIZES DE ESTILO VISUAL (TURMINHA DO GUIA) - STRICT MODE:
1. ESTILO ARTÍSTICO:
- Cartoon infantil 2D de alta qualidade.
- Traços "fofos" (cute/chibi proportions), linhas suaves e arredondadas.
- Cores vibrantes, saturadas e alegres.
- Iluminação suave e difusa.

2. CONSISTÊNCIA DE PERSONAGENS:
- Os personagens DEVEM seguir rigorosamente suas descrições visuais.
- Juninho SEMPRE tem muleta.
- Tony SEMPRE usa óculos e cabelo loiro.
- Maria SEMPRE tem coques (puffs).
- Verinha SEMPRE usa tranças.
- Jão SEMPRE usa boné laranja.
`
