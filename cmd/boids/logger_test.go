package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "WARN")
	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)

	out := buf.String()
	for _, s := range []string{"debug 1", "info 2"} {
		if strings.Contains(out, s) {
			t.Errorf("%q logged at warn level", s)
		}
	}
	for _, s := range []string{"[WARN] warn 3", "[ERROR] error 4"} {
		if !strings.Contains(out, s) {
			t.Errorf("%q missing from %q", s, out)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{
		"debug":   LogLevelDebug,
		"Info":    LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"":        LogLevelInfo,
		"loud":    LogLevelInfo,
	} {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRunHeadless(t *testing.T) {
	conf := DefaultConf
	conf.Frontend = "headless"
	conf.Width, conf.Height = 400, 300
	conf.SwarmSize = 30
	conf.Seed = 3
	conf.Steps = 50
	conf.StatsEvery = 10

	var buf bytes.Buffer
	log := NewLogger(&buf, "info")
	s := setup(&conf, log)
	st := RunHeadless(&conf, s, log)

	if st.Boids != 30 || st.Bits != 0 {
		t.Errorf("stats = %+v", st)
	}
	if st.Polarization < 0 || st.Polarization > 1+1e-9 {
		t.Errorf("polarization = %g", st.Polarization)
	}
	if n := strings.Count(buf.String(), "polarization"); n != 6 {
		t.Errorf("logged stats %d times, want 6:\n%s", n, buf.String())
	}
}
