// internal/service/translator_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_lingua_chat/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_chatTranslator_Translate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(m *mocks.ChatClient)
		want      string
	}{
		{
			name: "正常系: 翻訳結果をそのまま返す",
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return("こんにちは！何を注文しますか？", nil).Once()
			},
			want: "こんにちは！何を注文しますか？",
		},
		{
			name: "正常系: 引用符で囲まれた結果は剥がす",
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return(`"こんにちは！"`, nil).Once()
			},
			want: "こんにちは！",
		},
		{
			name: "異常系: APIキー未設定はモック翻訳",
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return("", ErrNoAPIKey).Once()
			},
			want: "[Translation to Japanese]: Hello! What would you like to order?",
		},
		{
			name: "異常系: 翻訳失敗はエラープレースホルダ",
			setupMock: func(m *mocks.ChatClient) {
				m.On("Complete", mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("upstream error")).Once()
			},
			want: "[Translation error]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChat := new(mocks.ChatClient)
			tt.setupMock(mockChat)
			translator := NewTranslator(mockChat)

			got := translator.Translate(ctx, "Hello! What would you like to order?", "English", "Japanese")

			assert.Equal(t, tt.want, got)
			mockChat.AssertExpectations(t)
		})
	}
}
