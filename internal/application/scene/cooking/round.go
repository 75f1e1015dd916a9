package cooking

import (
	"image"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/domain/anim"
	"github.com/younwookim/cook/internal/domain/entity"
	"github.com/younwookim/cook/internal/infrastructure/config"
)

// Slots is the number of ingredients that can float at once.
const Slots = 4

// Setup is what a round needs from the loaded assets.
type Setup struct {
	Idle   *anim.Player // playback limited to the first half, beat poses after
	Action *anim.Player
	Types  int // ingredient sheet columns, common and rare
	Height int // ingredient sprite height
	Button entity.Button
}

// Round runs the cooking mini-game: ingredients float by, the player drags
// them onto the cutting board and presses the button when done.
type Round struct {
	cfg    config.CookingConfig
	rng    *rand.Rand
	queue  *entity.TypeQueue
	cursor scene.Cursor

	idle   *anim.Player
	action *anim.Player
	pose   state.Pose
	beat   bool

	slots      [Slots]*entity.Ingredient
	dragging   *entity.Ingredient
	dragOffset image.Point
	pointer    image.Point
	hand       bool

	types     int
	height    int
	counts    []int
	nextID    int
	start     int64
	lastSpawn int64

	button   entity.Button
	finished bool
}

// NewRound creates a round. The common type queue is shuffled from rng
// right away.
func NewRound(cfg config.CookingConfig, setup Setup, rng *rand.Rand, cursor scene.Cursor) *Round {
	return &Round{
		cfg:    cfg,
		rng:    rng,
		queue:  entity.NewTypeQueue(cfg.CommonTypes, rng),
		cursor: cursor,
		idle:   setup.Idle,
		action: setup.Action,
		pose:   state.PoseIdle,
		types:  setup.Types,
		height: setup.Height,
		counts: make([]int, setup.Types),
		button: setup.Button,
	}
}

// Start sets the time the beat is measured from.
func (r *Round) Start(now int64) {
	r.start = now
}

// Tick advances the round by delta ms to time now.
func (r *Round) Tick(delta int, now int64) {
	rel := now - r.start + int64(r.cfg.BeatOffsetMs)
	r.beat = (rel*2*int64(r.cfg.BPM)/60000)%2 == 0

	r.animate(delta)

	hand := false
	if !r.finished {
		hand = r.updateIngredients(delta, now, rel)
	}
	r.setHand(hand)
}

func (r *Round) animate(delta int) {
	if r.pose == state.PoseAction && r.action.Ending(delta) {
		r.button.Hidden = false
		r.idle.Reset()
		r.pose = state.PoseIdle
		return
	}
	r.Animation().Advance(delta)
}

// updateIngredients drifts and removes ingredients, spawns a new one when
// due and reports whether the pointer is over something interactive.
func (r *Round) updateIngredients(delta int, now, rel int64) bool {
	hand := !r.button.Hidden && (r.button.Pressed || r.button.Contains(r.pointer))

	y := r.waveY(rel)
	free := -1
	for i, in := range r.slots {
		switch {
		case in == nil:
			free = i
		case in == r.dragging:
			hand = true
		default:
			in.Drift(delta, int(float64(r.cfg.WaveBaseY)-float64(in.Wave)*y))
			if in.OffScreen() {
				r.slots[i] = nil
			} else if in.Contains(r.pointer) {
				hand = true
			}
		}
	}

	if free >= 0 && now-r.lastSpawn >= int64(r.cfg.SpawnDelayMs) {
		r.lastSpawn = now
		r.slots[free] = r.spawn()
	}
	return hand
}

// waveY is the bob offset before phase and truncation.
func (r *Round) waveY(rel int64) float64 {
	return math.Sin(float64(rel)*math.Pi*float64(r.cfg.BPM)/60000) * float64(r.cfg.WaveAmplitude)
}

func (r *Round) spawn() *entity.Ingredient {
	id := r.nextID
	r.nextID++
	return entity.NewIngredient(id, r.nextType(id), r.cfg.MaxX, r.cfg.IngredientWidth, r.height)
}

// nextType rolls for a rare type on every RareEvery-th spawn, falling back
// to the common queue.
func (r *Round) nextType(id int) int {
	if id%r.cfg.RareEvery == 0 {
		roll := r.rng.Intn(100)
		if roll < r.types-r.cfg.CommonTypes {
			return r.cfg.CommonTypes + roll
		}
	}
	return r.queue.Next()
}

func (r *Round) setHand(hand bool) {
	if hand == r.hand {
		return
	}
	r.hand = hand
	r.cursor.SetHand(hand)
}

// MouseDown presses the button or picks up the topmost ingredient under
// the pointer.
func (r *Round) MouseDown(x, y int) {
	r.pointer = image.Pt(x, y)
	if !r.button.Hidden && r.button.Contains(r.pointer) {
		r.button.Pressed = true
		return
	}
	for i := Slots - 1; i >= 0; i-- {
		in := r.slots[i]
		if in != nil && in.Contains(r.pointer) {
			r.dragging = in
			r.dragOffset = r.pointer.Sub(in.Rect.Min)
			return
		}
	}
}

// MouseMove tracks the pointer and moves the dragged ingredient with it.
func (r *Round) MouseMove(x, y int) {
	r.pointer = image.Pt(x, y)
	if r.dragging != nil {
		p := r.pointer.Sub(r.dragOffset)
		r.dragging.MoveTo(p.X, p.Y)
	}
}

// MouseUp releases the button or drops the dragged ingredient.
func (r *Round) MouseUp(x, y int) {
	r.pointer = image.Pt(x, y)
	if r.button.Pressed {
		r.button.Pressed = false
		if r.button.Contains(r.pointer) {
			r.finished = true
		}
		return
	}
	if r.dragging != nil {
		r.drop(r.dragging)
		r.dragging = nil
	}
}

// drop puts an ingredient down. On the board while idle it is cut,
// anywhere else it resumes drifting from where it was let go.
func (r *Round) drop(in *entity.Ingredient) {
	if in.Rect.Min.X > r.cfg.MaxX {
		in.MoveTo(r.cfg.MaxX, in.Rect.Min.Y)
	}

	if r.pose != state.PoseIdle || !in.Rect.Min.In(r.cfg.DropTarget.Rect()) {
		in.Settle()
		return
	}

	r.counts[in.Type]++
	r.button.Hidden = true
	for i := range r.slots {
		if r.slots[i] == in {
			r.slots[i] = nil
			break
		}
	}
	r.action.Reset()
	r.pose = state.PoseAction
}

// Animation returns the active animation.
func (r *Round) Animation() *anim.Player {
	if r.pose == state.PoseAction {
		return r.action
	}
	return r.idle
}

// Frame returns the image to show, the beat pose while idle on the beat.
func (r *Round) Frame() *ebiten.Image {
	if r.pose == state.PoseIdle && r.beat {
		return r.idle.FrameAt(r.idle.Index() + r.idle.Len())
	}
	return r.Animation().Current()
}

// Target returns the ingredient the eyes follow, nil for none.
func (r *Round) Target() *entity.Ingredient {
	return Target(r.dragging, r.slots[:], r.cfg.CommonTypes)
}

// Pose returns which animation is active.
func (r *Round) Pose() state.Pose {
	return r.pose
}

// Beat reports whether the idle animation shows its beat pose.
func (r *Round) Beat() bool {
	return r.beat
}

// Hand reports whether the hand cursor is shown.
func (r *Round) Hand() bool {
	return r.hand
}

// Finished reports whether the button was clicked.
func (r *Round) Finished() bool {
	return r.finished
}

func (r *Round) Button() entity.Button {
	return r.button
}

func (r *Round) Dragging() *entity.Ingredient {
	return r.dragging
}

// Ingredients returns the slots; empty slots are nil.
func (r *Round) Ingredients() [Slots]*entity.Ingredient {
	return r.slots
}

func (r *Round) Types() int {
	return r.types
}

// Counts returns how many ingredients of each type were cut.
func (r *Round) Counts() []int {
	return append([]int(nil), r.counts...)
}
