package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversByType(t *testing.T) {
	b := NewBus()
	var selected []string
	hides := 0

	Subscribe(b, func(ev Select) { selected = append(selected, ev.ID) })
	Subscribe(b, func(HidePanel) { hides++ })

	assert.Equal(t, 1, Publish(b, Select{ID: "building_1"}))
	assert.Equal(t, 1, Publish(b, HidePanel{}))
	assert.Equal(t, 0, Publish(b, ToggleIcons{Visible: false}))

	assert.Equal(t, []string{"building_1"}, selected)
	assert.Equal(t, 1, hides)
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0
	unsub := Subscribe(b, func(Dismiss) { calls++ })
	other := Subscribe(b, func(Dismiss) { calls += 10 })

	unsub()
	unsub()
	Publish(b, Dismiss{})

	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, Subscribers[Dismiss](b))

	other()
	assert.Zero(t, Subscribers[Dismiss](b))
}

func TestHandlerMayUnsubscribeDuringPublish(t *testing.T) {
	b := NewBus()
	calls := 0
	var unsub func()
	unsub = Subscribe(b, func(ShowPanel) {
		calls++
		unsub()
	})
	Publish(b, ShowPanel{ID: "a"})
	Publish(b, ShowPanel{ID: "b"})
	assert.Equal(t, 1, calls)
}
