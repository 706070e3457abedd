package lattice

import "errors"

// ErrObjectAlreadyAdded is returned by Scene.Add when the same SceneObject
// instance is registered twice. This is a programming error, not a transient
// condition.
var ErrObjectAlreadyAdded = errors.New("lattice: scene object already added")

// Scene is an id-keyed container of SceneObjects. Ids are assigned from a
// monotonically increasing counter starting at 1 and are never reused within
// a Scene's lifetime, so a removed object's id stays dead. Render iteration
// follows insertion order.
type Scene struct {
	objects map[int]*SceneObject
	ids     map[*SceneObject]int
	order   []*SceneObject
	nextID  int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		objects: make(map[int]*SceneObject),
		ids:     make(map[*SceneObject]int),
		nextID:  1,
	}
}

// Add registers an object and returns its assigned id. Re-adding an object
// that is already registered returns ErrObjectAlreadyAdded.
func (s *Scene) Add(obj *SceneObject) (int, error) {
	if _, ok := s.ids[obj]; ok {
		return 0, ErrObjectAlreadyAdded
	}
	id := s.nextID
	s.nextID++
	s.objects[id] = obj
	s.ids[obj] = id
	s.order = append(s.order, obj)
	return id, nil
}

// Remove unregisters an object, freeing its id. Removing an object that is
// not in the scene is a no-op; teardown paths routinely remove objects they
// may already believe absent.
func (s *Scene) Remove(obj *SceneObject) {
	id, ok := s.ids[obj]
	if !ok {
		return
	}
	delete(s.objects, id)
	delete(s.ids, obj)
	for i, o := range s.order {
		if o == obj {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// ObjectByID returns the object registered under id, or nil when the id is
// unknown. Lookups from transient UI selections are routine, so a missing id
// is a not-found result rather than an error.
func (s *Scene) ObjectByID(id int) *SceneObject {
	return s.objects[id]
}

// IDOf returns the id an object was registered under, or 0 when the object
// is not in the scene.
func (s *Scene) IDOf(obj *SceneObject) int {
	return s.ids[obj]
}

// Len returns the number of registered objects.
func (s *Scene) Len() int {
	return len(s.order)
}

// Objects returns the registered objects in insertion order. The returned
// slice MUST NOT be mutated.
func (s *Scene) Objects() []*SceneObject {
	return s.order
}
