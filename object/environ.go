package object

import (
	"strings"
	"time"

	"github.com/basixel/basixel/canvas"
)

const rndSeed = 12345

// Environment holds all program variables, the console and the
// graphics surface. BASIC has one flat namespace, names are
// uppercased on the way in.
type Environment struct {
	store  map[string]Object
	term   Console
	screen *canvas.Canvas

	rndState uint64  // linear congruential generator state
	rndVal   float32 // most recent generated value

	flush func() // pushes pending canvas changes to the display
}

// SetFlushHook registers the renderer callback run at paint
// boundaries
func (e *Environment) SetFlushHook(fn func()) {
	e.flush = fn
}

// Flush pushes pending canvas changes to the display
func (e *Environment) Flush() {
	if e.flush != nil {
		e.flush()
	}
}

// NewTermEnvironment creates an environment with a terminal front-end
func NewTermEnvironment(term Console) *Environment {
	return &Environment{
		store:    make(map[string]Object),
		term:     term,
		rndState: rndSeed,
	}
}

// Get attempts to retrieve an object from the environment
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[strings.ToUpper(name)]
	return obj, ok
}

// Set stores an object in the environment
func (e *Environment) Set(name string, val Object) Object {
	e.store[strings.ToUpper(name)] = val
	return val
}

// Terminal allows access to the terminal console
func (e *Environment) Terminal() Console {
	return e.term
}

// Screen returns the graphics surface, nil until one is attached
func (e *Environment) Screen() *canvas.Canvas {
	return e.screen
}

// SetScreen attaches a graphics surface
func (e *Environment) SetScreen(cv *canvas.Canvas) {
	e.screen = cv
}

// Random returns a random number in [0,1)
// if x is greater than zero, a new random number is generated
// otherwise, the current rndVal is returned
func (e *Environment) Random(x int) *FloatSgl {
	if x > 0 {
		e.rndState = e.rndState*6364136223846793005 + 1
		e.rndVal = float32(float64(e.rndState>>33) / float64(uint64(1)<<31))
	}
	return &FloatSgl{Value: e.rndVal}
}

// Randomize starts a new random series from the passed seed
func (e *Environment) Randomize(seed int64) {
	e.rndState = uint64(seed)
	e.rndVal = 0
}

// RandomizeClock seeds the generator from the wall clock, used by
// RANDOMIZE with no argument
func (e *Environment) RandomizeClock() {
	e.Randomize(time.Now().UnixNano())
}
