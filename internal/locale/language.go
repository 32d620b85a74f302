package locale

import (
	"golang.org/x/text/language"
)

// Language is one of the supported UI languages
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Default is used whenever a stored or requested code cannot be honored
const Default = English

// Direction is the text layout direction
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// rtlScripts lists the scripts laid out right-to-left
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
}

// Parse maps a language code (any BCP 47 form such as "ar-SA") to a
// supported Language. Malformed or unsupported codes yield Default.
func Parse(code string) Language {
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	base, _ := tag.Base()
	switch base.String() {
	case string(Arabic):
		return Arabic
	case string(English):
		return English
	default:
		return Default
	}
}

// Tag returns the x/text language tag
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Direction returns the layout direction implied by the language's script
func (l Language) Direction() Direction {
	script, _ := l.Tag().Script()
	if rtlScripts[script.String()] {
		return RightToLeft
	}
	return LeftToRight
}

// Toggle returns the other supported language
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Code returns the upper-case code shown on the language toggle
func (l Language) Code() string {
	if l == Arabic {
		return "AR"
	}
	return "EN"
}

// String returns the lower-case language code
func (l Language) String() string {
	return string(l)
}

// Sign returns +1 for left-to-right and -1 for right-to-left layouts
func (d Direction) Sign() float32 {
	if d == RightToLeft {
		return -1
	}
	return 1
}

// String returns "ltr" or "rtl"
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}
