package colors

import "testing"

func TestNames_Order(t *testing.T) {
	want := []string{"default", "dark", "midnight", "sunrise", "nature", "lavender", "cherry", "cosmic"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPresets_DarkFlag(t *testing.T) {
	dark := map[string]bool{"dark": true, "midnight": true, "cosmic": true}
	for _, p := range Presets() {
		if p.Dark != dark[p.Preset] {
			t.Errorf("Preset %s: Dark = %v, want %v", p.Preset, p.Dark, dark[p.Preset])
		}
	}
}

func TestPresets_Complete(t *testing.T) {
	for _, p := range Presets() {
		filled := p
		filled.ApplyDefaults()
		if filled != p {
			t.Errorf("Preset %s leaves colors unset", p.Preset)
		}
	}
}

func TestGetPreset_Unknown(t *testing.T) {
	if got := GetPreset("neon"); got.Preset != DefaultPreset {
		t.Errorf("GetPreset(neon) = %s, want default", got.Preset)
	}
	if IsPreset("neon") {
		t.Error("neon should not be a preset")
	}
	if !IsPreset("cherry") {
		t.Error("cherry should be a preset")
	}
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	c := ColorScheme{Preset: "cosmic", Accent: "#FF0000"}
	c.ApplyDefaults()

	if c.Accent != "#FF0000" {
		t.Errorf("Accent override lost, got %s", c.Accent)
	}
	if c.Background != Cosmic().Background {
		t.Errorf("Expected cosmic background, got %s", c.Background)
	}
	if !c.Dark {
		t.Error("Expected cosmic to be dark")
	}
}

func TestMergeFrom(t *testing.T) {
	c := *Ocean()
	c.MergeFrom(ColorScheme{Accent: "#000000"})

	if c.Accent != "#000000" {
		t.Errorf("Expected merged accent, got %s", c.Accent)
	}
	if c.Title != Ocean().Title {
		t.Error("Empty fields must not overwrite")
	}
}

func TestToken(t *testing.T) {
	if Token("blue") != "#3B82F6" {
		t.Errorf("Token(blue) = %s", Token("blue"))
	}
	if Token("#123456") != "#123456" {
		t.Error("Hex values should pass through")
	}
}
