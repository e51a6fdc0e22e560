package logger

import "testing"

func TestMaskAuthorization(t *testing.T) {
	got := MaskAuthorization("Bearer abcdef1234")
	want := "Bearer ****1234"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskJSONAdminToken(t *testing.T) {
	input := map[string]any{
		"admin_token":  "7f3c2a1b-9d8e-4f5a-b6c7-d8e9f0a1b2c3",
		"service_name": "〇〇整体",
	}
	masked := MaskJSON(input)
	if masked["admin_token"] != "****b2c3" {
		t.Fatalf("expected masked admin_token, got %v", masked["admin_token"])
	}
	if masked["service_name"] != "〇〇整体" {
		t.Fatalf("expected service_name untouched, got %v", masked["service_name"])
	}
}

func TestMaskJSONNested(t *testing.T) {
	input := map[string]any{
		"config": map[string]any{
			"gemini_api_key": "key_12345678",
		},
	}
	masked := MaskJSON(input)
	nested, ok := masked["config"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map")
	}
	if nested["gemini_api_key"] != "****5678" {
		t.Fatalf("expected masked gemini_api_key, got %v", nested["gemini_api_key"])
	}
}

func TestMaskCookie(t *testing.T) {
	got := MaskCookie("session=abcdef1234; other=xyz")
	want := "session=****1234; other=****xyz"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
