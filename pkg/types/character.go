// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Character 定义"turminha"中的角色，同时也是贴纸（奖励）的标识
type Character int

const (
	// CharacterUnknown 未知角色
	CharacterUnknown Character = iota
	// CharacterJuninho 朱尼尼奥（勇气）
	CharacterJuninho
	// CharacterMaria 玛丽亚（同理心）
	CharacterMaria
	// CharacterTony 托尼（创造力）
	CharacterTony
	// CharacterJao 若昂（快乐）
	CharacterJao
	// CharacterVerinha 薇琳娜（自然）
	CharacterVerinha
)

// AllCharacters 按相册顺序返回全部角色
func AllCharacters() []Character {
	return []Character{
		CharacterJuninho,
		CharacterMaria,
		CharacterTony,
		CharacterJao,
		CharacterVerinha,
	}
}

// String 返回角色名称（同时用作持久化的贴纸ID）
func (c Character) String() string {
	switch c {
	case CharacterJuninho:
		return "Juninho"
	case CharacterMaria:
		return "Maria"
	case CharacterTony:
		return "Tony"
	case CharacterJao:
		return "Jão"
	case CharacterVerinha:
		return "Verinha"
	default:
		return "Unknown"
	}
}

// Valid 是否为五个角色之一
func (c Character) Valid() bool {
	return c >= CharacterJuninho && c <= CharacterVerinha
}

// ParseCharacter 将持久化的名称解析为角色
// 无法识别的名称返回 CharacterUnknown 和 false
func ParseCharacter(name string) (Character, bool) {
	for _, c := range AllCharacters() {
		if c.String() == name {
			return c, true
		}
	}
	return CharacterUnknown, false
}

// Gender 旁白语音的性别标签
type Gender int

const (
	// GenderMale 男声
	GenderMale Gender = iota
	// GenderFemale 女声
	GenderFemale
)

// String 返回性别标签
func (g Gender) String() string {
	if g == GenderFemale {
		return "female"
	}
	return "male"
}
