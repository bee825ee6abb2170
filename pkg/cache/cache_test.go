package cache

import (
	"testing"
	"time"
)

func TestTimed(t *testing.T) {
	c := NewTimed(5 * time.Minute)

	tstart := time.Now()

	c.set("20260830", "<html>tides</html>", tstart)

	doc, ok := c.get("20260830", tstart.Add(time.Minute))
	if !ok {
		t.Errorf("failed to get key that should not be expired")
	}
	if doc != "<html>tides</html>" {
		t.Errorf("got wrong document %q", doc)
	}

	_, ok = c.get("20260830", tstart.Add(10*time.Minute))
	if ok {
		t.Errorf("succeeded in getting expired key")
	}

	_, ok = c.get("20260830", tstart.Add(time.Minute))
	if ok {
		t.Errorf("succeeded in getting key that was previously evicted")
	}
}
