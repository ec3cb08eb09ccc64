package lights

import (
	"github.com/wheelibin/glow/internal/colour"
)

// the colour a user's light should show right now and which mode produced it
type Reading struct {
	colour.RGB
	Source string `json:"source"`
}
