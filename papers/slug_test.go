package papers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tts := map[string]string{
		"3D Object Detection":   "3d-object-detection",
		"AI":                    "ai",
		"  NeRF  ":              "nerf",
		"speech/audio (ASR)":    "speech-audio-asr",
		"../../../etc/passwd":   "etc-passwd",
		"Vision-Language Model": "vision-language-model",
		"   ":                   "",
	}

	for topic, expected := range tts {
		assert.Equal(t, expected, Slug(topic), topic)
	}
}
