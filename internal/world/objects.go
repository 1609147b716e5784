package world

// EventAround is fired when the player steps onto an object's cell.
const EventAround = "around-0"

// ObjectEvent is a callback attached to a map object. Returning false
// removes the object from the dungeon once the callback returns.
type ObjectEvent func(d *Dungeon, obj *MapObject) bool

// Events maps event names to callbacks.
type Events map[string]ObjectEvent

// NewMapEvent adds event under name to parent, creating parent when nil,
// and returns it so calls can be chained.
func NewMapEvent(name string, event ObjectEvent, parent Events) Events {
	if parent == nil {
		parent = make(Events)
	}
	parent[name] = event
	return parent
}

// MapObject is something placed on the map. Presentation fields are
// carried for renderers and never read by the dungeon itself.
type MapObject struct {
	ID      int
	X, Y    int
	Kind    string
	Mark    string
	Color   uint32
	Alpha   float64
	Sphere  bool
	Visible bool
	Events  Events
}

// ObjectOption customises an object created by AddObject.
type ObjectOption func(*MapObject)

// WithColor sets the RGB colour.
func WithColor(rgb uint32) ObjectOption {
	return func(o *MapObject) { o.Color = rgb }
}

// WithAlpha sets the opacity.
func WithAlpha(alpha float64) ObjectOption {
	return func(o *MapObject) { o.Alpha = alpha }
}

// WithSphere draws the object as a sphere in the first-person view.
func WithSphere(sphere bool) ObjectOption {
	return func(o *MapObject) { o.Sphere = sphere }
}

// WithVisible sets whether renderers should draw the object.
func WithVisible(visible bool) ObjectOption {
	return func(o *MapObject) { o.Visible = visible }
}

// WithKind tags the object with a catalogue kind.
func WithKind(kind string) ObjectOption {
	return func(o *MapObject) { o.Kind = kind }
}

// DefaultMark is used when AddObject is given an empty mark.
const DefaultMark = "o"

// AddObject places a new object and returns its id. Ids keep increasing
// across Init calls.
func (d *Dungeon) AddObject(x, y int, mark string, events Events, opts ...ObjectOption) int {
	if mark == "" {
		mark = DefaultMark
	}
	d.objectCounter++
	obj := &MapObject{
		ID:      d.objectCounter,
		X:       x,
		Y:       y,
		Mark:    mark,
		Color:   0xFFFFFF,
		Alpha:   1,
		Visible: true,
		Events:  events,
	}
	for _, opt := range opts {
		opt(obj)
	}
	d.objects = append(d.objects, obj)
	return obj.ID
}

// Object returns every object at x, y in insertion order.
func (d *Dungeon) Object(x, y int) []*MapObject {
	var list []*MapObject
	for _, obj := range d.objects {
		if obj.X == x && obj.Y == y {
			list = append(list, obj)
		}
	}
	return list
}

// Objects returns all objects in insertion order.
func (d *Dungeon) Objects() []*MapObject {
	out := make([]*MapObject, len(d.objects))
	copy(out, d.objects)
	return out
}

// RemoveObject deletes the object with the given id and reports whether it existed.
func (d *Dungeon) RemoveObject(id int) bool {
	for i, obj := range d.objects {
		if obj.ID == id {
			d.objects = append(d.objects[:i], d.objects[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Dungeon) hasObject(id int) bool {
	for _, obj := range d.objects {
		if obj.ID == id {
			return true
		}
	}
	return false
}

// DispatchObjectEvent fires EventAround on each object under the player.
// An object whose callback returns false is removed, and an object
// removed by an earlier callback is skipped. If a callback rebuilds the
// dungeon, dispatch stops: the remaining objects belonged to the old floor.
func (d *Dungeon) DispatchObjectEvent() {
	generation := d.generation
	for _, obj := range d.Objects() {
		if obj.X != d.player.X || obj.Y != d.player.Y {
			continue
		}
		event, ok := obj.Events[EventAround]
		if !ok || event == nil || !d.hasObject(obj.ID) {
			continue
		}
		keep := event(d, obj)
		if d.generation != generation {
			return
		}
		if !keep {
			d.RemoveObject(obj.ID)
		}
	}
}
