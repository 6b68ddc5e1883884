package template

// Language is the source dialect handed to the parser
type Language int

const (
	// LanguageUnknown is parsed with the JavaScript grammar
	LanguageUnknown Language = iota
	LanguageJS
	LanguageJSX
	LanguageTS
	LanguageTSX
)

func (l Language) String() string {
	switch l {
	case LanguageJS:
		return "js"
	case LanguageJSX:
		return "jsx"
	case LanguageTS:
		return "ts"
	case LanguageTSX:
		return "tsx"
	default:
		return "unknown"
	}
}
