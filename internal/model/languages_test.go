// internal/model/languages_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, IsSupportedLanguage("English"))
	assert.True(t, IsSupportedLanguage("Japanese"))
	assert.False(t, IsSupportedLanguage("Klingon"))
	assert.False(t, IsSupportedLanguage("english")) // 大文字小文字は区別する
	assert.False(t, IsSupportedLanguage(""))
}

func TestIsValidProficiencyLevel(t *testing.T) {
	assert.True(t, IsValidProficiencyLevel(ProficiencyBeginner))
	assert.True(t, IsValidProficiencyLevel(ProficiencyIntermediate))
	assert.True(t, IsValidProficiencyLevel(ProficiencyAdvanced))
	assert.False(t, IsValidProficiencyLevel("Expert"))
	assert.False(t, IsValidProficiencyLevel(""))
}

func TestProficiencyDescription(t *testing.T) {
	// 定義済みティアはそれぞれ固有の指示を持つ
	assert.NotEqual(t, ProficiencyDescription(ProficiencyBeginner), ProficiencyDescription(ProficiencyAdvanced))

	// 未知の値でも必ず何らかの指示を返す
	assert.Equal(t, "Use language appropriate for an average speaker", ProficiencyDescription("Expert"))
	assert.Equal(t, "Use language appropriate for an average speaker", ProficiencyDescription(""))
}

func TestIsValidScenario(t *testing.T) {
	for _, s := range Scenarios {
		assert.True(t, IsValidScenario(s.ID), s.ID)
	}
	assert.False(t, IsValidScenario("space-station"))
	assert.False(t, IsValidScenario(""))
}

func TestScenarioDescription(t *testing.T) {
	assert.Contains(t, ScenarioDescription("cafe"), "café")

	// 未知のシナリオはID名からフォールバックを組み立てる
	assert.Equal(t, "a conversation related to space-station", ScenarioDescription("space-station"))
}

func TestTTSLanguageCode(t *testing.T) {
	assert.Equal(t, "en", TTSLanguageCode("English"))
	assert.Equal(t, "ja", TTSLanguageCode("Japanese"))
	assert.Equal(t, "zh-CN", TTSLanguageCode("Chinese"))

	// 未対応言語は英語へフォールバック
	assert.Equal(t, "en", TTSLanguageCode("Klingon"))
	assert.Equal(t, "en", TTSLanguageCode(""))
}
