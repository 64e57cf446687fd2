package t2048

// Animation constants
const (
	slideAnimationDuration = 8 // ~133ms at 60fps
	popAnimationDuration   = 6 // ~100ms at 60fps
)

// TileAnimation represents an animated tile in board coordinates.
type TileAnimation struct {
	Value    int     // Tile value while moving
	FromX    int     // Start position X (in cells)
	FromY    int     // Start position Y (in cells)
	ToX      int     // End position X (in cells)
	ToY      int     // End position Y (in cells)
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Absorbed into a merge at the destination
	IsNew    bool    // Freshly spawned tile (pop effect)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// pendingTile is a spawned tile waiting for the slide to finish before it pops in.
type pendingTile struct {
	X, Y  int
	Value int
}

// animator holds slide/pop animation state. It only affects rendering;
// the board is already in its final state while tiles are drawn in motion.
type animator struct {
	animations     []TileAnimation
	phase          AnimationPhase
	ticks          int
	pendingNewTile *pendingTile
}

// Animating reports whether an animation is in progress.
func (a *animator) Animating() bool {
	return a.phase != PhaseNone
}

// startSlideAnimation initializes slide animations from a tilt's moves.
func (a *animator) startSlideAnimation(moves []TileMove) {
	a.animations = a.animations[:0]
	for _, m := range moves {
		a.animations = append(a.animations, TileAnimation{
			Value:  m.Value,
			FromX:  m.FromX,
			FromY:  m.FromY,
			ToX:    m.ToX,
			ToY:    m.ToY,
			Merged: m.Merged,
		})
	}
	a.phase = PhaseSlide
	a.ticks = 0
}

// queuePop schedules the pop animation for a spawned tile after the slide.
func (a *animator) queuePop(c Coord, value int) {
	if a.phase == PhaseSlide {
		a.pendingNewTile = &pendingTile{X: c.X, Y: c.Y, Value: value}
		return
	}
	a.startPopAnimation(c.X, c.Y, value)
}

// startPopAnimation initializes pop animation for a new tile.
func (a *animator) startPopAnimation(x, y, value int) {
	a.animations = []TileAnimation{{
		Value: value,
		FromX: x,
		FromY: y,
		ToX:   x,
		ToY:   y,
		IsNew: true,
	}}
	a.phase = PhasePop
	a.ticks = 0
}

// updateAnimation advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *animator) updateAnimation() bool {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideAnimationDuration
	case PhasePop:
		duration = popAnimationDuration
	default:
		return false
	}

	a.ticks++
	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.animations {
		a.animations[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finishAnimation()
		return a.phase != PhaseNone
	}
	return true
}

// finishAnimation completes the current animation phase.
func (a *animator) finishAnimation() {
	if a.phase == PhaseSlide && a.pendingNewTile != nil {
		p := a.pendingNewTile
		a.pendingNewTile = nil
		a.startPopAnimation(p.X, p.Y, p.Value)
		return
	}

	a.phase = PhaseNone
	a.animations = nil
	a.ticks = 0
}

// finishAllAnimations drops every running and queued animation.
func (a *animator) finishAllAnimations() {
	a.pendingNewTile = nil
	a.phase = PhaseNone
	a.animations = nil
	a.ticks = 0
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current position during animation.
func (ta *TileAnimation) interpolatePosition() (x, y float64) {
	t := easeOutQuad(ta.Progress)
	x = float64(ta.FromX) + (float64(ta.ToX)-float64(ta.FromX))*t
	y = float64(ta.FromY) + (float64(ta.ToY)-float64(ta.FromY))*t
	return x, y
}
