package env

import (
	"testing"
	"time"
)

func TestStr(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	if got := Str("TEST_STR", "def"); got != "hello" {
		t.Errorf("Str = %q", got)
	}
	if got := Str("TEST_STR_UNSET", "def"); got != "def" {
		t.Errorf("Str default = %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := Int("TEST_INT", 7); got != 42 {
		t.Errorf("Int = %d", got)
	}
	t.Setenv("TEST_INT_BAD", "not a number")
	if got := Int("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("Int fallback = %d", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "1.5")
	if got := Float("TEST_FLOAT", 0.1); got != 1.5 {
		t.Errorf("Float = %v", got)
	}
	if got := Float("TEST_FLOAT_UNSET", 0.1); got != 0.1 {
		t.Errorf("Float default = %v", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !Bool("TEST_BOOL", false) {
		t.Error("Bool should be true")
	}
	t.Setenv("TEST_BOOL_BAD", "maybe")
	if Bool("TEST_BOOL_BAD", false) {
		t.Error("Bool fallback should be false")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "30s")
	if got := Duration("TEST_DUR", time.Minute); got != 30*time.Second {
		t.Errorf("Duration = %v", got)
	}
	if got := Duration("TEST_DUR_UNSET", time.Minute); got != time.Minute {
		t.Errorf("Duration default = %v", got)
	}
}
