// internal/model/languages.go
package model

import "fmt"

// SupportedLanguages はアプリケーションが対応する言語の固定リスト
var SupportedLanguages = []string{
	"English", "Spanish", "French", "German", "Italian",
	"Portuguese", "Chinese", "Japanese", "Korean", "Russian",
	"Arabic", "Hindi", "Dutch", "Swedish", "Polish", "Turkish",
}

// IsSupportedLanguage は言語名が対応リストに含まれるかを判定します
func IsSupportedLanguage(name string) bool {
	for _, l := range SupportedLanguages {
		if l == name {
			return true
		}
	}
	return false
}

// 習熟度ティア
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
)

var ProficiencyLevels = []string{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
}

func IsValidProficiencyLevel(level string) bool {
	for _, l := range ProficiencyLevels {
		if l == level {
			return true
		}
	}
	return false
}

// proficiencyDescriptions はプロンプトに埋め込む習熟度ごとの指示
var proficiencyDescriptions = map[string]string{
	ProficiencyBeginner:     "Keep sentences short and simple. Use basic vocabulary and grammar.",
	ProficiencyIntermediate: "Use moderate complexity sentences. Introduce some idiomatic expressions.",
	ProficiencyAdvanced:     "Use natural, complex language with sophisticated vocabulary and grammar.",
}

// ProficiencyDescription は未知の値に対してフォールバックを返す全域関数です
func ProficiencyDescription(level string) string {
	if d, ok := proficiencyDescriptions[level]; ok {
		return d
	}
	return "Use language appropriate for an average speaker"
}

// Scenario は会話シナリオの定義
type Scenario struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var Scenarios = []Scenario{
	{ID: "cafe", Name: "At a Café", Icon: "coffee"},
	{ID: "shopping", Name: "Shopping at a Mall", Icon: "shopping-bag"},
	{ID: "airport", Name: "Traveling at the Airport", Icon: "plane"},
	{ID: "meeting", Name: "Meeting New People", Icon: "users"},
	{ID: "doctor", Name: "Visiting a Doctor", Icon: "activity"},
}

func IsValidScenario(id string) bool {
	for _, s := range Scenarios {
		if s.ID == id {
			return true
		}
	}
	return false
}

// scenarioDescriptions はプロンプトに埋め込むシナリオの説明
var scenarioDescriptions = map[string]string{
	"cafe":     "a conversation in a café where the user is ordering food and drinks",
	"shopping": "a conversation in a shopping mall where the user is looking for clothes or other items",
	"airport":  "a conversation at an airport where the user is navigating check-in, security, and finding their gate",
	"meeting":  "a conversation where the user is meeting new people and introducing themselves",
	"doctor":   "a conversation at a doctor's office where the user is describing symptoms and receiving advice",
}

// ScenarioDescription は未知のシナリオに対してフォールバックを返す全域関数です
func ScenarioDescription(id string) string {
	if d, ok := scenarioDescriptions[id]; ok {
		return d
	}
	return fmt.Sprintf("a conversation related to %s", id)
}

// ttsLanguageCodes は言語名から音声合成用の言語コードへの固定テーブル
var ttsLanguageCodes = map[string]string{
	"English":    "en",
	"Spanish":    "es",
	"French":     "fr",
	"German":     "de",
	"Italian":    "it",
	"Portuguese": "pt",
	"Chinese":    "zh-CN",
	"Japanese":   "ja",
	"Korean":     "ko",
	"Russian":    "ru",
	"Arabic":     "ar",
	"Hindi":      "hi",
	"Dutch":      "nl",
	"Swedish":    "sv",
	"Polish":     "pl",
	"Turkish":    "tr",
}

// TTSLanguageCode は未対応の言語名に対して "en" にフォールバックします
func TTSLanguageCode(name string) string {
	if code, ok := ttsLanguageCodes[name]; ok {
		return code
	}
	return "en"
}
