// internal/service/generator_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_chatResponseGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	learner := &model.Learner{
		NativeLanguage:   "Japanese",
		TargetLanguage:   "English",
		ProficiencyLevel: model.ProficiencyBeginner,
	}
	userMessage := "I would like a coffee"

	tests := []struct {
		name        string
		userMessage *string
		setupMock   func(m *mocks.ChatClient)
		want        string
	}{
		{
			name:        "正常系: 挨拶モード (userMessage=nil)",
			userMessage: nil,
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything,
					"Start a conversation with me in English for the cafe scenario. I am a beginner level speaker.").
					Return("Hello! Welcome to our café. What can I get you?", nil).Once()
			},
			want: "Hello! Welcome to our café. What can I get you?",
		},
		{
			name:        "正常系: 返信モード",
			userMessage: &userMessage,
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, userMessage).
					Return("Of course! What size would you like?", nil).Once()
			},
			want: "Of course! What size would you like?",
		},
		{
			name:        "異常系: APIキー未設定はキー欠落プレースホルダ",
			userMessage: &userMessage,
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return("", ErrNoAPIKey).Once()
			},
			want: missingKeyPlaceholder,
		},
		{
			name:        "異常系: 生成失敗は汎用プレースホルダ",
			userMessage: &userMessage,
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("upstream error")).Once()
			},
			want: generatePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChat := new(mocks.ChatClient)
			tt.setupMock(mockChat)
			generator := NewResponseGenerator(mockChat)

			got := generator.Generate(ctx, tt.userMessage, "cafe", learner)

			assert.Equal(t, tt.want, got)
			mockChat.AssertExpectations(t)
		})
	}
}

func Test_buildTutorSystemPrompt(t *testing.T) {
	learner := &model.Learner{
		TargetLanguage:   "Spanish",
		ProficiencyLevel: model.ProficiencyAdvanced,
	}

	prompt := buildTutorSystemPrompt("doctor", learner)

	assert.Contains(t, prompt, "practice Spanish")
	assert.Contains(t, prompt, model.ScenarioDescription("doctor"))
	assert.Contains(t, prompt, model.ProficiencyDescription(model.ProficiencyAdvanced))
	assert.Contains(t, prompt, "Respond ONLY in Spanish.")
}
