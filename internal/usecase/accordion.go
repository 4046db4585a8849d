package usecase

import (
	"sync"

	"github.com/google/uuid"
)

type AccordionMode string

const (
	// AccordionOwned keeps the active set inside the controller.
	AccordionOwned AccordionMode = "owned"
	// AccordionControlled leaves the active set to the caller; Toggle only
	// reports the transition through the callback and SetActive applies it.
	AccordionControlled AccordionMode = "controlled"
)

// AccordionController tracks which room panels are expanded. In exclusive
// mode at most one room is active; in multi-open mode Toggle flips only the
// given room's membership. The mode is fixed at construction, never inferred.
// OnActiveChange fires on both open and close transitions.
type AccordionController struct {
	mu             sync.Mutex
	mode           AccordionMode
	exclusive      bool
	active         map[uuid.UUID]struct{}
	onActiveChange func(roomID uuid.UUID, open bool)
}

func NewAccordionController(mode AccordionMode, exclusive bool, onActiveChange func(roomID uuid.UUID, open bool)) *AccordionController {
	return &AccordionController{
		mode:           mode,
		exclusive:      exclusive,
		active:         make(map[uuid.UUID]struct{}),
		onActiveChange: onActiveChange,
	}
}

// Toggle flips the room's expanded state. In exclusive mode toggling the
// active room closes it, toggling another room swaps it in exclusively.
func (a *AccordionController) Toggle(roomID uuid.UUID) {
	a.mu.Lock()

	_, wasOpen := a.active[roomID]

	var closed []uuid.UUID
	if a.mode == AccordionOwned {
		if wasOpen {
			delete(a.active, roomID)
		} else {
			if a.exclusive {
				for id := range a.active {
					closed = append(closed, id)
				}
				a.active = make(map[uuid.UUID]struct{})
			}
			a.active[roomID] = struct{}{}
		}
	} else if a.exclusive && !wasOpen {
		// Controlled: state is applied by the caller via SetActive, but the
		// displaced room still has to be reported closed.
		for id := range a.active {
			closed = append(closed, id)
		}
	}

	callback := a.onActiveChange
	a.mu.Unlock()

	if callback == nil {
		return
	}

	for _, id := range closed {
		callback(id, false)
	}
	callback(roomID, !wasOpen)
}

// SetActive replaces the active set. In controlled mode this is how the
// caller's state reaches the controller.
func (a *AccordionController) SetActive(roomIDs []uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = make(map[uuid.UUID]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		a.active[id] = struct{}{}
		if a.exclusive {
			break
		}
	}
}

func (a *AccordionController) IsActive(roomID uuid.UUID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.active[roomID]
	return ok
}

func (a *AccordionController) Active() []uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(a.active))
	for id := range a.active {
		ids = append(ids, id)
	}
	return ids
}

func (a *AccordionController) Mode() AccordionMode {
	return a.mode
}
