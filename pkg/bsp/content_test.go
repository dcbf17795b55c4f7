package bsp

import "testing"

func TestContent_String(t *testing.T) {
	tests := []struct {
		content  Content
		expected string
	}{
		{ContentsEmpty, "Empty"},
		{ContentsSolid, "Solid"},
		{ContentsWater, "Water"},
		{ContentsSlime, "Slime"},
		{ContentsLava, "Lava"},
		{ContentsSky, "Sky"},
		{ContentsOrigin, "Origin"},
		{ContentsClip, "Clip"},
		{ContentsCurrent0, "Current0"},
		{ContentsCurrent90, "Current90"},
		{ContentsCurrent180, "Current180"},
		{ContentsCurrent270, "Current270"},
		{ContentsCurrentUp, "CurrentUp"},
		{ContentsCurrentDown, "CurrentDown"},
		{ContentsTranslucent, "Translucent"},
		{Content(-99), "Unknown(-99)"},
		{Content(0), "Unknown(0)"},
	}

	for _, tc := range tests {
		if tc.content.String() != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", int32(tc.content), tc.content.String(), tc.expected)
		}
	}
}

func TestContent_Known(t *testing.T) {
	tests := []struct {
		content  Content
		expected bool
	}{
		{ContentsEmpty, true},
		{ContentsSolid, true},
		{ContentsWater, true},
		{ContentsTranslucent, true},
		{Content(0), false},
		{Content(1), false},
		{Content(-16), false},
		{Content(-99), false},
	}

	for _, tc := range tests {
		if tc.content.Known() != tc.expected {
			t.Errorf("%v.Known() = %v, expected %v", tc.content, tc.content.Known(), tc.expected)
		}
	}
}

func TestContent_IsSolid(t *testing.T) {
	if !ContentsSolid.IsSolid() {
		t.Error("Solid should be solid")
	}
	if ContentsEmpty.IsSolid() {
		t.Error("Empty should not be solid")
	}
	if ContentsClip.IsSolid() {
		t.Error("Clip should not be solid")
	}
}

func TestContent_IsEmpty(t *testing.T) {
	if !ContentsEmpty.IsEmpty() {
		t.Error("Empty should be empty")
	}
	if ContentsSolid.IsEmpty() {
		t.Error("Solid should not be empty")
	}
	if ContentsSky.IsEmpty() {
		t.Error("Sky should not be empty")
	}
}

func TestContent_IsLiquid(t *testing.T) {
	tests := []struct {
		content  Content
		expected bool
	}{
		{ContentsEmpty, false},
		{ContentsSolid, false},
		{ContentsWater, true},
		{ContentsSlime, true},
		{ContentsLava, true},
		{ContentsSky, false},
		{ContentsOrigin, false},
		{ContentsClip, false},
		{ContentsCurrent0, true},
		{ContentsCurrent90, true},
		{ContentsCurrent180, true},
		{ContentsCurrent270, true},
		{ContentsCurrentUp, true},
		{ContentsCurrentDown, true},
		{ContentsTranslucent, false},
	}

	for _, tc := range tests {
		if tc.content.IsLiquid() != tc.expected {
			t.Errorf("%v.IsLiquid() = %v, expected %v", tc.content, tc.content.IsLiquid(), tc.expected)
		}
	}
}
