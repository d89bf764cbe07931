package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/b64"
)

func TestLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("d", nil)
	l.Info("i", b64.Fields{"n": 1})
	l.Warn("w", b64.Fields{"key": "armor:user:1", "reason": "frame"})
	l.Error("e", nil)

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries", len(entries))
	}
	want := []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Fatalf("entry %d level %v want %v", i, e.Level, want[i])
		}
	}
	if entries[2].Data["reason"] != "frame" || entries[2].Message != "w" {
		t.Fatalf("unexpected warn entry: %+v", entries[2])
	}
}
