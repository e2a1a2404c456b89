package statmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocamind/deep-go/stat"
)

func TestCostNoAttunements(t *testing.T) {
	sm := New()
	sm.Set(stat.Strength, 50)
	sm.Set(stat.Fortitude, 25)
	assert.Equal(t, 75, sm.Cost())
}

func TestCostFirstAttunementFree(t *testing.T) {
	sm := New()
	sm.Set(stat.Frostdraw, 40)
	assert.Equal(t, 40, sm.Cost())
}

func TestCostAdditionalAttunementsDiscounted(t *testing.T) {
	sm := New()
	sm.Set(stat.Frostdraw, 40)
	sm.Set(stat.Flamecharm, 30)
	sm.Set(stat.Thundercall, 20)
	// 40 + 30 + 20 - (3 attunements invested - 1) = 90 - 2 = 88
	assert.Equal(t, 88, sm.Cost())
}

func TestCostIgnoresZeroOrNegativeAttunements(t *testing.T) {
	sm := New()
	sm.Set(stat.Frostdraw, 40)
	sm.Set(stat.Flamecharm, 0)
	assert.Equal(t, 40, sm.Cost())
}

func TestRemaining(t *testing.T) {
	sm := New()
	sm.Set(stat.Strength, 100)
	assert.Equal(t, DefaultMaxTotal-100, sm.Remaining())
	assert.Equal(t, 50, sm.RemainingWithCap(150))
}

func TestLevel(t *testing.T) {
	sm := New()
	assert.Equal(t, 0, sm.Level())

	sm.Set(stat.Strength, 30)
	assert.Equal(t, 1, sm.Level())

	sm2 := New()
	sm2.Set(stat.Strength, 44)
	assert.Equal(t, 1, sm2.Level())

	sm3 := New()
	sm3.Set(stat.Strength, 45)
	assert.Equal(t, 2, sm3.Level())
}

func TestGetUnsetReturnsZero(t *testing.T) {
	sm := New()
	assert.Equal(t, 0, sm.Get(stat.Strength))
}

func TestCloneIsIndependent(t *testing.T) {
	sm := New()
	sm.Set(stat.Strength, 10)
	clone := sm.Clone()
	clone.Set(stat.Strength, 20)
	assert.Equal(t, 10, sm.Get(stat.Strength))
	assert.Equal(t, 20, clone.Get(stat.Strength))
}
