package main

import "testing"

func TestCorsConfigWithOrigins(t *testing.T) {
	c := corsConfig([]string{"http://localhost:5173"})
	if err := c.Validate(); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	if c.AllowAllOrigins {
		t.Error("AllowAllOrigins set despite configured origins")
	}
	if !c.AllowCredentials {
		t.Error("credentials disabled for configured origins")
	}
	if len(c.AllowOrigins) != 1 || c.AllowOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowOrigins = %v", c.AllowOrigins)
	}
}

func TestCorsConfigDefaultsToAllowAll(t *testing.T) {
	c := corsConfig(nil)
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid, server would not boot: %v", err)
	}
	if !c.AllowAllOrigins {
		t.Error("empty origin list must fall back to AllowAllOrigins")
	}
	if c.AllowCredentials {
		t.Error("credentials must be off when every origin is allowed")
	}
}
