package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/raindrop/sfx"
)

// soundBank plays pre-rendered effects through ebiten's audio context.
type soundBank struct {
	ctx *audio.Context
	pcm map[string][]byte
}

func newSoundBank() *soundBank {
	pcm, err := sfx.RenderAll()
	if err != nil {
		log.Printf("audio: render effects: %v", err)
		return nil
	}
	return &soundBank{ctx: audio.NewContext(int(sfx.SampleRate)), pcm: pcm}
}

func (b *soundBank) Play(name string) {
	if b == nil {
		return
	}
	data, ok := b.pcm[name]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(data).Play()
}
