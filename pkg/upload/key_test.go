package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		fileName string
		want     string
	}{
		{"plain", "upload", "clip.mp4", "upload/clip.mp4"},
		{"prefix with space", "up load", "clip.mp4", "up%20load/clip.mp4"},
		{"file name is verbatim", "upload", "my clip (1)?.mp4", "upload/my clip (1)?.mp4"},
		{"prefix with slash", "videos/2024", "clip.mp4", "videos%2F2024/clip.mp4"},
		{"empty prefix", "", "clip.mp4", "/clip.mp4"},
		{"unicode prefix", "vidéo", "clip.mp4", "vid%C3%A9o/clip.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.prefix, tt.fileName))
		})
	}
}

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AZaz09", "AZaz09"},
		{"-_.!~*'()", "-_.!~*'()"},
		{" ", "%20"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"#?/:@$,;", "%23%3F%2F%3A%40%24%2C%3B"},
		{"%", "%25"},
		{"日本", "%E6%97%A5%E6%9C%AC"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeComponent(tt.in))
		})
	}
}
