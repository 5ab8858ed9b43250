package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	sig := NewSignal(false)
	assert.False(t, sig.PrefersDark())

	var got []bool
	unsubscribe := sig.Subscribe(func(dark bool) { got = append(got, dark) })
	assert.Equal(t, 1, sig.Subscribers())

	assert.True(t, sig.Update(true))
	assert.False(t, sig.Update(true), "same value is not a change")
	assert.True(t, sig.Update(false))
	assert.Equal(t, []bool{true, false}, got)

	unsubscribe()
	unsubscribe() // second call is harmless
	assert.Equal(t, 0, sig.Subscribers())

	sig.Update(true)
	assert.Equal(t, []bool{true, false}, got, "no calls after unsubscribe")
	assert.True(t, sig.PrefersDark())
}

func TestSignal_SubscriberCanReadSignal(t *testing.T) {
	sig := NewSignal(false)
	var seen bool
	sig.Subscribe(func(bool) { seen = sig.PrefersDark() })
	sig.Update(true)
	assert.True(t, seen, "callbacks run outside of the signal lock")
}
