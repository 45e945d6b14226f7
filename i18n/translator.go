package i18n

import "fmt"

// Translator retrieves localized messages for error codes. data provides
// optional parameters to embed in the message (for example, "min" or "max").
type Translator interface {
	Message(code string, data map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]any) string {
	switch t.lang {
	case "ja":
		switch code {
		case "REQUIRED":
			return "値は必須です"
		case "INVALID_TYPE":
			return "型が不正です"
		case "MIN_LENGTH":
			return fmt.Sprintf("文字列は%v文字以上である必要があります", data["min"])
		case "MAX_LENGTH":
			return fmt.Sprintf("文字列は%v文字以下である必要があります", data["max"])
		case "PATTERN":
			return "文字列が必要なパターンに一致しません"
		case "EMAIL":
			return "メールアドレスの形式が不正です"
		case "UUID":
			return "UUIDの形式が不正です"
		case "URL":
			return "URLの形式が不正です"
		case "PHONE":
			return "電話番号の形式が不正です"
		case "CREDIT_CARD":
			return "クレジットカード番号が不正です"
		case "POSTAL_CODE":
			return "郵便番号の形式が不正です"
		case "ONE_OF":
			return fmt.Sprintf("次のいずれかである必要があります: %v", data["allowed"])
		case "MIN_VALUE":
			return fmt.Sprintf("値は%v以上である必要があります", data["min"])
		case "MAX_VALUE":
			return fmt.Sprintf("値は%v以下である必要があります", data["max"])
		case "POSITIVE":
			return "値は正である必要があります"
		case "NON_NEGATIVE":
			return "値は非負である必要があります"
		case "FINITE":
			return "値は有限である必要があります"
		case "EXPECTED_VALUE":
			return fmt.Sprintf("値は%vである必要があります", data["expected"])
		case "MIN_SIZE":
			return fmt.Sprintf("リストは%v要素以上である必要があります", data["min"])
		case "MAX_SIZE":
			return fmt.Sprintf("リストは%v要素以下である必要があります", data["max"])
		case "MIN_DATE":
			return fmt.Sprintf("日付は%v以降である必要があります", data["min"])
		case "MAX_DATE":
			return fmt.Sprintf("日付は%v以前である必要があります", data["max"])
		case "MIN_DATE_TIME":
			return fmt.Sprintf("日時は%v以降である必要があります", data["min"])
		case "MAX_DATE_TIME":
			return fmt.Sprintf("日時は%v以前である必要があります", data["max"])
		case "MIN_TIME":
			return fmt.Sprintf("時刻は%v以降である必要があります", data["min"])
		case "MAX_TIME":
			return fmt.Sprintf("時刻は%v以前である必要があります", data["max"])
		case "UNION_FAILED":
			return "値がいずれのスキーマにも一致しませんでした"
		case "CONSTRUCTION_FAILED":
			return fmt.Sprintf("検証済みオブジェクトの構築に失敗しました: %v", data["cause"])
		case "PARSE_ERROR":
			return "解析エラー"
		case "INVALID_FORMAT":
			return "形式が不正です"
		}
	default: // "en"
		switch code {
		case "REQUIRED":
			return "Value is required"
		case "INVALID_TYPE":
			return "Invalid type"
		case "MIN_LENGTH":
			return fmt.Sprintf("String must be at least %v characters long", data["min"])
		case "MAX_LENGTH":
			return fmt.Sprintf("String must be at most %v characters long", data["max"])
		case "PATTERN":
			return "String does not match required pattern"
		case "EMAIL":
			return "Invalid email format"
		case "UUID":
			return "Invalid UUID format"
		case "URL":
			return "Invalid URL format"
		case "PHONE":
			return "Invalid phone number format"
		case "CREDIT_CARD":
			return "Invalid credit card number"
		case "POSTAL_CODE":
			return "Invalid postal code format"
		case "ONE_OF":
			return fmt.Sprintf("Must be one of: %v", data["allowed"])
		case "MIN_VALUE":
			return fmt.Sprintf("Value must be at least %v", data["min"])
		case "MAX_VALUE":
			return fmt.Sprintf("Value must be at most %v", data["max"])
		case "POSITIVE":
			return "Value must be positive"
		case "NON_NEGATIVE":
			return "Value must be non-negative"
		case "FINITE":
			return "Value must be finite (not NaN or infinite)"
		case "EXPECTED_VALUE":
			return fmt.Sprintf("Value must be %v", data["expected"])
		case "MIN_SIZE":
			return fmt.Sprintf("List must have at least %v elements", data["min"])
		case "MAX_SIZE":
			return fmt.Sprintf("List must have at most %v elements", data["max"])
		case "MIN_DATE":
			return fmt.Sprintf("Date must be on or after %v", data["min"])
		case "MAX_DATE":
			return fmt.Sprintf("Date must be on or before %v", data["max"])
		case "MIN_DATE_TIME":
			return fmt.Sprintf("DateTime must be on or after %v", data["min"])
		case "MAX_DATE_TIME":
			return fmt.Sprintf("DateTime must be on or before %v", data["max"])
		case "MIN_TIME":
			return fmt.Sprintf("Time must be at or after %v", data["min"])
		case "MAX_TIME":
			return fmt.Sprintf("Time must be at or before %v", data["max"])
		case "UNION_FAILED":
			return "Value did not match any of the allowed schemas"
		case "CONSTRUCTION_FAILED":
			return fmt.Sprintf("Failed to construct validated object: %v", data["cause"])
		case "PARSE_ERROR":
			return "Parse error"
		case "INVALID_FORMAT":
			return "Invalid format"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves a message for code through the current Translator.
func T(code string, data map[string]any) string {
	return currentTranslator.Message(code, data)
}
