package canvas

// ScoreSetter is the part of the store the drag controller writes through.
type ScoreSetter interface {
	SetScore(id string, score float64) (Factor, error)
	Len() int
}

// DragState names the two states of a drag gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragController turns pointer events on the chart into score updates.
//
// Idle --down(id)--> Dragging(id) --move(y)--> Dragging(id)
// Dragging --up|leave--> Idle
//
// Moves while idle are ignored. There is no timeout; a drag ends only on
// pointer up or when the pointer leaves the surface.
type DragController struct {
	store  ScoreSetter
	vp     Viewport
	active string
	state  DragState
}

// NewDragController returns an idle controller writing to store.
func NewDragController(store ScoreSetter, vp Viewport) *DragController {
	return &DragController{store: store, vp: vp}
}

// State returns the current state.
func (d *DragController) State() DragState { return d.state }

// Active returns the id being dragged, if any.
func (d *DragController) Active() (string, bool) {
	return d.active, d.state == Dragging
}

// SetViewport changes the viewport used to invert pointer positions.
func (d *DragController) SetViewport(vp Viewport) { d.vp = vp }

// PointerDown starts dragging id. A press during a drag retargets it.
func (d *DragController) PointerDown(id string) {
	d.active = id
	d.state = Dragging
}

// PointerMove converts y, the pointer offset from the top of the surface,
// into a score for the dragged factor. It reports false when idle. If the
// dragged factor no longer exists the drag is cancelled and the store error
// is returned.
func (d *DragController) PointerMove(y float64) (Factor, bool, error) {
	if d.state != Dragging {
		return Factor{}, false, nil
	}
	score := NewMapper(d.vp, d.store.Len()).ScoreOfY(y)
	f, err := d.store.SetScore(d.active, score)
	if err != nil {
		d.release()
		return Factor{}, false, err
	}
	return f, true, nil
}

// PointerUp ends the drag.
func (d *DragController) PointerUp() { d.release() }

// PointerLeave ends the drag exactly like PointerUp. It covers pointer-up
// events that happen off the surface and are never delivered.
func (d *DragController) PointerLeave() { d.release() }

func (d *DragController) release() {
	d.active = ""
	d.state = Idle
}

// SurfaceOffset converts a pointer's client Y and the surface's bounding top
// into the offset PointerMove expects.
func SurfaceOffset(clientY, surfaceTop float64) float64 {
	return clientY - surfaceTop
}
