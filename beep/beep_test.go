package beep

import "testing"

func TestMakeTones(t *testing.T) {
	tn := makeTones(0.1)
	tail := int(sampleRate * 0.1)
	for name, s := range map[string][]int16{
		"trigger": tn.trigger,
		"enable":  tn.enable,
		"disable": tn.disable,
		"error":   tn.err,
	} {
		if len(s) <= tail {
			t.Errorf("%s: only %d samples", name, len(s))
		}
		for i := len(s) - tail; i < len(s); i++ {
			if s[i] != 0 {
				t.Errorf("%s: tail not silent at %d", name, i)
				break
			}
		}
	}
	if len(tn.enable) != len(tn.disable) {
		t.Errorf("toggle cues differ in length: %d vs %d", len(tn.enable), len(tn.disable))
	}
}

func TestTickDecays(t *testing.T) {
	s := tick(1000, 0.1, 0.5, 50)
	var head, end int
	for i := 0; i < 200; i++ {
		head = max(head, abs(int(s[i])))
		end = max(end, abs(int(s[len(s)-200+i])))
	}
	if end >= head {
		t.Errorf("no decay: head %d end %d", head, end)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
