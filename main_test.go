package main

import "testing"

func TestEffectiveVersionPrefersInjected(t *testing.T) {
	if got := effectiveVersion("v1.4.0"); got != "v1.4.0" {
		t.Errorf("effectiveVersion(v1.4.0) = %q", got)
	}
}

func TestEffectiveVersionDev(t *testing.T) {
	if got := effectiveVersion("dev"); got == "" {
		t.Error("effectiveVersion(dev) returned empty string")
	}
}
