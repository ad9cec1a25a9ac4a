package system

import (
	"log"

	"github.com/milk9111/raindrop/ecs"
)

// Sound names raised through ecs.PlaySound.
const (
	SoundRing    = "ring"
	SoundAttack  = "attack"
	SoundDie     = "die"
	SoundBossHit = "boss_hit"
)

// Debug enables per-tick logging in systems that would otherwise be noisy.
var Debug bool

// SoundPlayer plays a named effect. Frontends supply one backed by their
// audio device.
type SoundPlayer interface {
	Play(name string)
}

// AudioSystem forwards Sound events to a SoundPlayer.
type AudioSystem struct {
	player SoundPlayer
	Mute   bool

	sounds ecs.EventReader
}

func NewAudioSystem(player SoundPlayer, mute bool) *AudioSystem {
	return &AudioSystem{player: player, Mute: mute}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	// Always drain so unmuting does not replay a backlog.
	events := ecs.ReadEvents(w, &s.sounds, ecs.EventSound)
	if s.Mute || s.player == nil {
		return
	}
	for _, evt := range events {
		if Debug {
			log.Printf("audio: play %s", evt.Name)
		}
		s.player.Play(evt.Name)
	}
}
